package repository

import "context"

// RepositoryFactory provides access to repositories bound to the current
// transaction. All repositories created from the same factory share one
// underlying transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
}

// TransactionManager manages database transactions across repositories.
type TransactionManager interface {
	// Execute runs the given function within a transaction. The function
	// receives a factory whose repositories are bound to that transaction.
	// A returned error rolls the transaction back, otherwise it commits.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}
