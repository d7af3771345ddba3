package services

import (
	portsrepo "github.com/khatasync/khata_backend/internal/core/ports/repositories"
	portssvc "github.com/khatasync/khata_backend/internal/core/ports/services"
	"github.com/khatasync/khata_backend/pkg/config"
)

// NewServiceContainer wires the full service graph from the repository
// provider. The uploader and parser come from the caller so main can swap
// implementations without touching the services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, uploader portssvc.BackupUploader, parser portssvc.IntentParser) *portssvc.ServiceContainer {
	transactionSvc := NewTransactionService(repos.TransactionRepo, repos.LedgerRepo, repos.CustomerRepo)
	expenseSvc := NewExpenseService(repos.ExpenseRepo, repos.LedgerRepo)

	return &portssvc.ServiceContainer{
		Customer:    NewCustomerService(repos.CustomerRepo, repos.TransactionRepo),
		Transaction: transactionSvc,
		Expense:     expenseSvc,
		Ledger:      NewLedgerService(repos.LedgerRepo, repos.TransactionRepo, repos.ExpenseRepo),
		Balance:     NewBalanceService(repos.BalanceRepo, repos.LedgerRepo),
		Trade:       NewTradeService(repos.TradeRepo),
		Backup:      NewBackupService(repos.SnapshotRepo, uploader, cfg.BackupDir),
		Voice:       NewVoiceService(parser, repos.CustomerRepo, transactionSvc, expenseSvc),
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg),
	}
}
