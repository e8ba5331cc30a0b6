package client_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	clientsvc "github.com/amirasaad/banking/pkg/service/client"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryRepository is an in-memory stand-in for the client store. It hands
// out copies, like a real document store, so service-side mutations never
// leak into stored state without an explicit Update.
type memoryRepository struct {
	mu      sync.Mutex
	clients map[uuid.UUID]*domain.Client
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{clients: make(map[uuid.UUID]*domain.Client)}
}

func cloneClient(c *domain.Client) *domain.Client {
	clone := *c
	clone.Accounts = append([]domain.Account(nil), c.Accounts...)
	return &clone
}

func (r *memoryRepository) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := cloneClient(c)
	clone.ID = uuid.New()
	r.clients[clone.ID] = clone
	return cloneClient(clone), nil
}

func (r *memoryRepository) Get(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.NewNotFound("client with id %s could not be found", id)
	}
	return cloneClient(c), nil
}

func (r *memoryRepository) List(_ context.Context) ([]*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	clients := make([]*domain.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, cloneClient(c))
	}
	return clients, nil
}

func (r *memoryRepository) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.clients[c.ID]; !ok {
		return nil, domain.NewNotFound("client with id %s could not be found", c.ID)
	}
	r.clients[c.ID] = cloneClient(c)
	return cloneClient(c), nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) (*domain.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.NewNotFound("client with id %s could not be found", id)
	}
	delete(r.clients, id)
	return c, nil
}

// TestClientLifecycle walks a client through creation, deposit, an overdraw
// attempt and deletion against an in-memory store.
func TestClientLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := clientsvc.New(newMemoryRepository(), slog.Default())

	created, err := svc.CreateClient(ctx, &domain.Client{
		FName:    "Donald",
		LName:    "Duck",
		Accounts: []domain.Account{{Name: "Checking", Balance: 400}},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, created.ID)

	got, err := svc.GetClientById(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Donald", got.FName)

	account, err := svc.DepositAmount(ctx, created.ID, "Checking", 200)
	require.NoError(t, err)
	assert.Equal(t, 600.0, account.Balance)

	_, err = svc.WithdrawAmount(ctx, created.ID, "Checking", 4000)
	require.Error(t, err)
	assert.True(t, domain.IsInsufficientFunds(err))
	assert.Contains(t, err.Error(), "600")

	// The failed withdrawal must not have touched the stored balance.
	accounts, err := svc.GetAccountsForClient(ctx, created.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, 600.0, accounts[0].Balance)

	deleted, err := svc.DeleteClient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = svc.GetClientById(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

// TestDepositThenWithdrawRoundTrip checks the persisted balance is additive
// across successive operations.
func TestDepositThenWithdrawRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := clientsvc.New(newMemoryRepository(), slog.Default())

	created, err := svc.CreateClient(ctx, &domain.Client{
		FName:    "Scrooge",
		LName:    "McDuck",
		Accounts: []domain.Account{{Name: "Vault", Balance: 1000}},
	})
	require.NoError(t, err)

	_, err = svc.DepositAmount(ctx, created.ID, "Vault", 500)
	require.NoError(t, err)

	account, err := svc.WithdrawAmount(ctx, created.ID, "Vault", 1500)
	require.NoError(t, err)
	assert.Equal(t, 0.0, account.Balance)

	accounts, err := svc.GetAccountsForClient(ctx, created.ID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, accounts[0].Balance)
}

// TestAddAccountToNewClientWithoutAccounts covers the client created without
// any accounts list; the first mutation must still work.
func TestAddAccountToNewClientWithoutAccounts(t *testing.T) {
	ctx := context.Background()
	svc := clientsvc.New(newMemoryRepository(), slog.Default())

	created, err := svc.CreateClient(ctx, &domain.Client{FName: "Daisy", LName: "Duck"})
	require.NoError(t, err)
	assert.Empty(t, created.Accounts)

	updated, err := svc.AddAccountToClient(ctx, created.ID, domain.Account{Name: "Checking", Balance: 100})
	require.NoError(t, err)
	require.Len(t, updated.Accounts, 1)
	assert.Equal(t, "Checking", updated.Accounts[0].Name)
}
