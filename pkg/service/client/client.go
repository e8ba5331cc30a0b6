// Package client implements the account ledger: client CRUD passthrough plus
// the deposit, withdraw and balance-query rules applied to a client's
// accounts.
package client

import (
	"context"
	"log/slog"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
)

// Service applies the ledger rules on top of the client repository. It holds
// a transient working copy of the client during an operation and never caches
// state across calls.
//
// Deposit and withdraw are unsynchronized read-modify-write passes over the
// whole client record: two concurrent operations against the same client can
// overwrite each other's changes. Callers that need isolation must serialize
// writes per client.
type Service struct {
	repo   repository.ClientRepository
	logger *slog.Logger
}

// New creates a Service backed by the given repository.
func New(repo repository.ClientRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateClient stores a new client; the repository assigns the id.
func (s *Service) CreateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return s.repo.Create(ctx, client)
}

// GetAllClients returns every stored client.
func (s *Service) GetAllClients(ctx context.Context) ([]*domain.Client, error) {
	return s.repo.List(ctx)
}

// GetClientById returns the client with the given id.
func (s *Service) GetClientById(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.Get(ctx, id)
}

// UpdateClient overwrites the stored record for client.ID.
func (s *Service) UpdateClient(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	return s.repo.Update(ctx, client)
}

// DeleteClient removes the client and returns the prior record.
func (s *Service) DeleteClient(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	return s.repo.Delete(ctx, id)
}

// AddAccountToClient appends account to the client's account list and
// persists the whole record. Duplicate names are permitted and the balance
// sign is not validated.
func (s *Service) AddAccountToClient(
	ctx context.Context,
	clientID uuid.UUID,
	account domain.Account,
) (*domain.Client, error) {
	c, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	c.Accounts = append(c.Accounts, account)
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info("account added",
		"client_id", clientID,
		"account", account.Name,
		"balance", account.Balance,
	)
	return updated, nil
}

// GetAccountsForClient returns the client's accounts, optionally filtered by
// balance bounds. A nil bound means "not supplied"; a supplied zero value is
// honored. With both bounds the filter keeps balance <= *lessThan and
// > *greaterThan; with only the lower bound it keeps balance >= *greaterThan.
// The inclusive/exclusive asymmetry between the two lower-bound paths is kept
// for compatibility with existing consumers.
//
// Filtering never mutates the client or the store; with no bounds the
// accounts come back unfiltered in their stored order.
func (s *Service) GetAccountsForClient(
	ctx context.Context,
	clientID uuid.UUID,
	lessThan, greaterThan *float64,
) ([]domain.Account, error) {
	c, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if lessThan == nil && greaterThan == nil {
		return c.Accounts, nil
	}
	accounts := make([]domain.Account, 0, len(c.Accounts))
	for _, a := range c.Accounts {
		switch {
		case lessThan != nil && greaterThan != nil:
			if a.Balance <= *lessThan && a.Balance > *greaterThan {
				accounts = append(accounts, a)
			}
		case lessThan != nil:
			if a.Balance <= *lessThan {
				accounts = append(accounts, a)
			}
		default:
			if a.Balance >= *greaterThan {
				accounts = append(accounts, a)
			}
		}
	}
	return accounts, nil
}

// DepositAmount adds amount to the named account (first match) and persists
// the whole client. The amount is not validated, so a negative deposit debits
// the account. The returned account is the locally computed state, not a
// re-read from the store.
func (s *Service) DepositAmount(
	ctx context.Context,
	clientID uuid.UUID,
	accountName string,
	amount float64,
) (*domain.Account, error) {
	c, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	i := c.FindAccount(accountName)
	if i == -1 {
		return nil, domain.NewNotFound("account with name %s could not be found", accountName)
	}
	c.Accounts[i].Balance += amount
	if _, err = s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	account := c.Accounts[i]
	s.logger.Info("deposit applied",
		"client_id", clientID,
		"account", accountName,
		"amount", amount,
		"balance", account.Balance,
	)
	return &account, nil
}

// WithdrawAmount subtracts amount from the named account (first match) and
// persists the whole client. It fails with an insufficient-funds error when
// the balance is strictly less than amount; withdrawing the exact balance
// down to zero is allowed.
func (s *Service) WithdrawAmount(
	ctx context.Context,
	clientID uuid.UUID,
	accountName string,
	amount float64,
) (*domain.Account, error) {
	c, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return nil, err
	}
	i := c.FindAccount(accountName)
	if i == -1 {
		return nil, domain.NewNotFound("account with name %s could not be found", accountName)
	}
	if c.Accounts[i].Balance < amount {
		return nil, domain.NewInsufficientFunds(
			"insufficient funds: account %s only has an available balance of %v",
			accountName, c.Accounts[i].Balance,
		)
	}
	c.Accounts[i].Balance -= amount
	if _, err = s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	account := c.Accounts[i]
	s.logger.Info("withdrawal applied",
		"client_id", clientID,
		"account", accountName,
		"amount", amount,
		"balance", account.Balance,
	)
	return &account, nil
}
