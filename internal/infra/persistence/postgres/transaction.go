// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"kioskdash/internal/domain/repository"
	"kioskdash/internal/domain/service"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db     *gorm.DB
	sealer service.CredentialSealer
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx     *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
	sealer service.CredentialSealer
}

// NewOrganizationRepository creates an organization repository bound to the transaction.
func (f *gormRepositoryFactory) NewOrganizationRepository() repository.OrganizationRepository {
	return NewOrganizationRepository(f.tx)
}

// NewConnectionRepository creates a connection repository bound to the transaction.
func (f *gormRepositoryFactory) NewConnectionRepository() repository.ConnectionRepository {
	return NewConnectionRepository(f.tx, f.sealer)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, sealer service.CredentialSealer) repository.TransactionManager {
	return &gormTransactionManager{db: db, sealer: sealer}
}

// Execute runs the given function within a single database transaction on the primary.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Clauses(dbresolver.Write).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic, then re-panic so fx or the echo recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx, sealer: tm.sealer}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
