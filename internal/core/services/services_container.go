package services

import (
	portsrepo "github.com/SscSPs/monthly_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/monthly_ledger/internal/core/ports/services"
	"github.com/SscSPs/monthly_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Workplace service first since the others authorize through it
	container.Workplace = NewWorkplaceService(repos.WorkplaceRepo)
	workplaceAuthorizer := container.Workplace.(portssvc.WorkplaceAuthorizerSvc)

	container.Category = NewCategoryService(repos.CategoryRepo, workplaceAuthorizer)

	container.LineItem = NewLineItemService(
		repos.LineItemRepo,
		WithLineItemWorkplaceAuthorizer(workplaceAuthorizer),
		WithCategoryResolver(container.Category),
		WithMaxSeriesCount(cfg.MaxSeriesCount),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LineItemSvcFacade  = (*lineItemService)(nil)
	_ portssvc.CategorySvcFacade  = (*categoryService)(nil)
	_ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)
)
