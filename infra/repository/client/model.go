package client

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/google/uuid"
)

// AccountList stores a client's accounts as one jsonb document so the record
// is read and written whole, preserving account order.
type AccountList []domain.Account

// Value implements driver.Valuer. A nil list is persisted as an empty array
// so stored documents always carry an accounts list.
func (l AccountList) Value() (driver.Value, error) {
	if l == nil {
		l = AccountList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *AccountList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported accounts column type %T", value)
	}
}

// Client represents a client record in the database.
type Client struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	FName    string      `gorm:"column:f_name;not null"`
	LName    string      `gorm:"column:l_name;not null"`
	Accounts AccountList `gorm:"type:jsonb;not null"`
}

func mapModelToDomain(m *Client) *domain.Client {
	return &domain.Client{
		ID:       m.ID,
		FName:    m.FName,
		LName:    m.LName,
		Accounts: m.Accounts,
	}
}

func mapDomainToModel(c *domain.Client) *Client {
	return &Client{
		ID:       c.ID,
		FName:    c.FName,
		LName:    c.LName,
		Accounts: AccountList(c.Accounts),
	}
}
