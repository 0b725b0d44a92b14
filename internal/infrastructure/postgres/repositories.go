package postgres

// Repositories agrupa los adaptadores PostgreSQL sobre un mismo Querier.
type Repositories struct {
	Users        *UserRepo
	Products     *ProductRepo
	Customers    *CustomerRepo
	Orders       *OrderRepo
	Invoices     *InvoiceRepo
	Transactions *TransactionRepo
	Budgets      *BudgetRepo
	Goals        *GoalRepo
}

// NewRepositories construye todos los adaptadores. Pasar pool o tx (Querier).
func NewRepositories(q Querier) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(q),
		Products:     NewProductRepository(q),
		Customers:    NewCustomerRepository(q),
		Orders:       NewOrderRepository(q),
		Invoices:     NewInvoiceRepository(q),
		Transactions: NewTransactionRepository(q),
		Budgets:      NewBudgetRepository(q),
		Goals:        NewGoalRepository(q),
	}
}
