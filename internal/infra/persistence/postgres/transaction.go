package postgres

import (
	"context"

	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewCustomerRepository creates a new customer repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

// NewRelatedRecordRepository creates a new related-record repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewRelatedRecordRepository() repository.RelatedRecordRepository {
	return NewRelatedRecordRepository(f.tx)
}

// NewDismissalRepository creates a new dismissal repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewDismissalRepository() repository.DismissalRepository {
	return NewDismissalRepository(f.tx)
}

// NewMergeRecordRepository creates a new merge record repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewMergeRecordRepository() repository.MergeRecordRepository {
	return NewMergeRecordRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single READ COMMITTED database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewStorageFailureError(tx.Error, "failed to begin transaction")
	}

	// A panic inside the callback must never leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	if err := tx.Exec("SET TRANSACTION ISOLATION LEVEL READ COMMITTED").Error; err != nil {
		tx.Rollback()

		return domainerrors.NewStorageFailureError(err, "failed to set isolation level")
	}

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewStorageFailureError(err, "failed to commit transaction")
	}

	return nil
}
