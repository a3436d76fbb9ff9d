package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dnu-connect/tutorconnect/internal/models"
)

// TransactionRepository is the append-only payment ledger. Superseded
// payments for a booking stay in the ledger; only the booking's link moves.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions []models.Transaction
	byID         map[uuid.UUID]int
}

// NewTransactionRepository creates an empty ledger.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{byID: make(map[uuid.UUID]int)}
}

// Create appends a transaction to the ledger.
func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[transaction.ID] = len(r.transactions)
	r.transactions = append(r.transactions, *transaction)
	return nil
}

// FindByID returns a ledger entry by id.
func (r *TransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	transaction := r.transactions[idx]
	return &transaction, nil
}

// List returns a copy of the full ledger in recording order.
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Transaction, len(r.transactions))
	copy(out, r.transactions)
	return out, nil
}
