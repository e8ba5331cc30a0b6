// Package client provides the gorm-backed client store.
package client

import (
	"context"
	"errors"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/amirasaad/banking/pkg/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientRepository struct {
	db *gorm.DB
}

// New returns a ClientRepository backed by the given connection.
func New(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

// Migrate creates or updates the clients table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Client{})
}

// Create inserts the client under a freshly assigned id; any caller-supplied
// id is ignored.
func (r *clientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	m := mapDomainToModel(c)
	m.ID = uuid.New()
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return mapModelToDomain(m), nil
}

func (r *clientRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var m Client
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, mapStoreError(err, id)
	}
	return mapModelToDomain(&m), nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	var ms []Client
	if err := r.db.WithContext(ctx).Find(&ms).Error; err != nil {
		return nil, err
	}
	clients := make([]*domain.Client, 0, len(ms))
	for i := range ms {
		clients = append(clients, mapModelToDomain(&ms[i]))
	}
	return clients, nil
}

// Update overwrites the stored record after verifying it exists, so a missing
// id surfaces as not-found instead of silently creating a record.
func (r *clientRepository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	if _, err := r.Get(ctx, c.ID); err != nil {
		return nil, err
	}
	m := mapDomainToModel(c)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return mapModelToDomain(m), nil
}

// Delete removes the record and returns its prior state.
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	prior, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(&Client{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return prior, nil
}

// mapStoreError keeps gorm errors inside the infrastructure layer, converting
// a missing record into the domain's not-found kind.
func mapStoreError(err error, id uuid.UUID) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NewNotFound("client with id %s could not be found", id)
	}
	return err
}
