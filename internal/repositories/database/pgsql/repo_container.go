package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx-backed repository onto a shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		CustomerRepo:    newPgxCustomerRepository(pool),
		TransactionRepo: newPgxTransactionRepository(pool),
		ExpenseRepo:     newPgxExpenseRepository(pool),
		LedgerRepo:      newPgxLedgerRepository(pool),
		BalanceRepo:     newPgxBalanceRepository(pool),
		TradeRepo:       newPgxTradeRepository(pool),
		UserRepo:        newPgxUserRepository(pool),
		SnapshotRepo:    newPgxSnapshotRepository(pool),
	}
}
