package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository instance bound to the current transaction.
	UserRepo() UserRepository

	// AuthRepo returns an AuthRepository instance bound to the current transaction.
	AuthRepo() AuthRepository

	// RefreshTokenRepo returns a RefreshTokenRepository instance bound to the current transaction.
	RefreshTokenRepo() RefreshTokenRepository

	// KYCRepo returns a KYCRepository instance bound to the current transaction.
	KYCRepo() KYCRepository

	// LoanRepo returns a LoanRepository instance bound to the current transaction.
	LoanRepo() LoanRepository

	// DividendRepo returns a DividendRepository instance bound to the current transaction.
	DividendRepo() DividendRepository

	// ShareRepo returns a ShareRepository instance bound to the current transaction.
	ShareRepo() ShareRepository

	// TicketRepo returns a TicketRepository instance bound to the current transaction.
	TicketRepo() TicketRepository

	// AuditRepo returns an AuditRepository instance bound to the current transaction.
	AuditRepo() AuditRepository
}
