// Package client registers the HTTP routes for banking clients and their
// accounts, translating requests into ledger service calls and error kinds
// into status codes.
package client

import (
	"context"
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ClientService defines the ledger operations used by the handlers.
type ClientService interface {
	CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	GetAllClients(ctx context.Context) ([]*domain.Client, error)
	GetClientById(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error)
	DeleteClient(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	AddAccountToClient(ctx context.Context, clientID uuid.UUID, account domain.Account) (*domain.Client, error)
	GetAccountsForClient(ctx context.Context, clientID uuid.UUID, lessThan, greaterThan *float64) ([]domain.Account, error)
	DepositAmount(ctx context.Context, clientID uuid.UUID, accountName string, amount float64) (*domain.Account, error)
	WithdrawAmount(ctx context.Context, clientID uuid.UUID, accountName string, amount float64) (*domain.Account, error)
}

// Routes registers HTTP routes for client and account operations.
//
//   - POST   /clients                                : create a client (store assigns the id)
//   - GET    /clients                                : list all clients
//   - GET    /clients/:id                            : fetch a client
//   - PUT    /clients/:id                            : overwrite a client
//   - DELETE /clients/:id                            : delete a client, returning the prior record
//   - POST   /clients/:id/accounts                   : attach an account
//   - GET    /clients/:id/accounts                   : list accounts, optional amountLessThan / amountGreaterThan bounds
//   - PATCH  /clients/:id/accounts/:account/deposit  : deposit into the named account
//   - PATCH  /clients/:id/accounts/:account/withdraw : withdraw from the named account
func Routes(app *fiber.App, svc ClientService) {
	app.Post("/clients", CreateClient(svc))
	app.Get("/clients", GetAllClients(svc))
	app.Get("/clients/:id", GetClientById(svc))
	app.Put("/clients/:id", UpdateClient(svc))
	app.Delete("/clients/:id", DeleteClient(svc))
	app.Post("/clients/:id/accounts", AddAccount(svc))
	app.Get("/clients/:id/accounts", GetAccounts(svc))
	app.Patch("/clients/:id/accounts/:account/deposit", Deposit(svc))
	app.Patch("/clients/:id/accounts/:account/withdraw", Withdraw(svc))
}

// parseClientID validates the :id path parameter. The returned fiber error
// carries the 400 status through the app's error handler.
func parseClientID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "client ID must be a valid UUID")
	}
	return id, nil
}

// CreateClient returns the handler for POST /clients.
func CreateClient(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateClientRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.CreateClient(c.Context(), &domain.Client{
			FName:    input.FName,
			LName:    input.LName,
			Accounts: toDomainAccounts(input.Accounts),
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Client created", created)
	}
}

// GetAllClients returns the handler for GET /clients.
func GetAllClients(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clients, err := svc.GetAllClients(c.Context())
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Clients retrieved", clients)
	}
}

// GetClientById returns the handler for GET /clients/:id.
func GetClientById(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		client, err := svc.GetClientById(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client retrieved", client)
	}
}

// UpdateClient returns the handler for PUT /clients/:id.
func UpdateClient(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[UpdateClientRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.UpdateClient(c.Context(), &domain.Client{
			ID:       id,
			FName:    input.FName,
			LName:    input.LName,
			Accounts: toDomainAccounts(input.Accounts),
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client updated", updated)
	}
}

// DeleteClient returns the handler for DELETE /clients/:id.
func DeleteClient(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		deleted, err := svc.DeleteClient(c.Context(), id)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client deleted", deleted)
	}
}

// AddAccount returns the handler for POST /clients/:id/accounts.
func AddAccount(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[AccountPayload](c)
		if input == nil {
			return err
		}
		updated, err := svc.AddAccountToClient(c.Context(), id, domain.Account{
			Name:    input.Name,
			Balance: input.Balance,
		})
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account added", updated)
	}
}

// GetAccounts returns the handler for GET /clients/:id/accounts. The optional
// amountLessThan and amountGreaterThan query parameters bound the returned
// balances; a supplied value of 0 is a real bound, not "absent".
func GetAccounts(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		lessThan, err := queryBound(c, "amountLessThan")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid query parameter", fmt.Sprintf("amountLessThan must be a number: %v", err))
		}
		greaterThan, err := queryBound(c, "amountGreaterThan")
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest,
				"Invalid query parameter", fmt.Sprintf("amountGreaterThan must be a number: %v", err))
		}
		accounts, err := svc.GetAccountsForClient(c.Context(), id, lessThan, greaterThan)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts retrieved", accounts)
	}
}

// Deposit returns the handler for PATCH /clients/:id/accounts/:account/deposit.
func Deposit(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		account, err := svc.DepositAmount(c.Context(), id, c.Params("account"), input.Amount)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", account)
	}
}

// Withdraw returns the handler for PATCH /clients/:id/accounts/:account/withdraw.
func Withdraw(svc ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseClientID(c)
		if err != nil {
			return err
		}
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		account, err := svc.WithdrawAmount(c.Context(), id, c.Params("account"), input.Amount)
		if err != nil {
			return common.ErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", account)
	}
}
