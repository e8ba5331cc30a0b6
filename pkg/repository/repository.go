// Package repository defines the persistence boundary for banking clients.
package repository

import (
	"context"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/google/uuid"
)

// ClientRepository is the store gateway for client records. Records are read
// and written whole, keyed by client id.
//
// Get and Delete fail with a domain not-found error when the id is absent.
// Update performs an existence check before overwriting, so a missing id
// surfaces as not-found instead of an implicit create. Create assigns a fresh
// id, ignoring any caller-supplied one.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
