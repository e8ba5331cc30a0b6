// Package domain holds the banking client entities and the error taxonomy
// shared by the service and infrastructure layers.
package domain

import "github.com/google/uuid"

// Account is a named balance belonging to exactly one client. Names are not
// deduplicated within a client; lookups always resolve to the first match.
type Account struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

// Client is a bank customer owning an ordered list of accounts. The id is
// assigned by the store on creation; the accounts list may be empty.
type Client struct {
	ID       uuid.UUID `json:"id"`
	FName    string    `json:"fname"`
	LName    string    `json:"lname"`
	Accounts []Account `json:"accounts"`
}

// FindAccount returns the index of the first account with the given name,
// or -1 when no account matches.
func (c *Client) FindAccount(name string) int {
	for i, a := range c.Accounts {
		if a.Name == name {
			return i
		}
	}
	return -1
}
