package pgsql

import (
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LineItemRepo:  newPgxLineItemRepository(dbPool),
		CategoryRepo:  newPgxCategoryRepository(dbPool),
		WorkplaceRepo: newPgxWorkplaceRepository(dbPool),
	}
}
