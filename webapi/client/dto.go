package client

import (
	"strconv"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/gofiber/fiber/v2"
)

// AccountPayload is the wire form of an account.
type AccountPayload struct {
	Name    string  `json:"name" validate:"required"`
	Balance float64 `json:"balance"`
}

// CreateClientRequest is the body for POST /clients. Any id in the body is
// ignored; the store assigns one.
type CreateClientRequest struct {
	FName    string           `json:"fname" validate:"required"`
	LName    string           `json:"lname" validate:"required"`
	Accounts []AccountPayload `json:"accounts"`
}

// UpdateClientRequest is the body for PUT /clients/:id. The path id wins over
// any id in the body.
type UpdateClientRequest struct {
	FName    string           `json:"fname" validate:"required"`
	LName    string           `json:"lname" validate:"required"`
	Accounts []AccountPayload `json:"accounts"`
}

// AmountRequest is the body for deposit and withdraw. The amount is not
// validated for sign; the ledger rules decide what is acceptable.
type AmountRequest struct {
	Amount float64 `json:"amount"`
}

func toDomainAccounts(payloads []AccountPayload) []domain.Account {
	if payloads == nil {
		return nil
	}
	accounts := make([]domain.Account, 0, len(payloads))
	for _, p := range payloads {
		accounts = append(accounts, domain.Account{Name: p.Name, Balance: p.Balance})
	}
	return accounts
}

// queryBound parses an optional numeric query parameter. Absent or empty
// means "not supplied" (nil); a present value must parse, including zero.
func queryBound(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
