package repositories

// RepositoryProvider aggregates all repository facades for dependency injection.
type RepositoryProvider struct {
	CustomerRepo    CustomerRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ExpenseRepo     ExpenseRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
	BalanceRepo     BalanceRepositoryFacade
	TradeRepo       TradeRepositoryFacade
	UserRepo        UserRepositoryFacade
	SnapshotRepo    SnapshotRepository
}
