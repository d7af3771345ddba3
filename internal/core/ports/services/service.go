package services

// ServiceContainer aggregates all service facades for dependency injection.
type ServiceContainer struct {
	Customer    CustomerSvcFacade
	Transaction TransactionSvcFacade
	Expense     ExpenseSvcFacade
	Ledger      LedgerSvcFacade
	Balance     BalanceSvcFacade
	Trade       TradeSvcFacade
	Backup      BackupSvcFacade
	Voice       VoiceSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
}
