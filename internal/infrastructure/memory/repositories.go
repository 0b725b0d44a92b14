package memory

// Repositories agrupa un juego completo de repositorios en memoria.
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

// New crea todos los repositorios vacíos.
func New() *Repositories {
	return &Repositories{
		Users:        NewUserRepository(),
		Products:     NewProductRepository(),
		Customers:    NewCustomerRepository(),
		Orders:       NewOrderRepository(),
		Invoices:     NewInvoiceRepository(),
		Transactions: NewTransactionRepository(),
		Budgets:      NewBudgetRepository(),
		Goals:        NewGoalRepository(),
	}
}
