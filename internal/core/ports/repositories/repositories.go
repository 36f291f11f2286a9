package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	LineItemRepo  LineItemRepositoryFacade
	CategoryRepo  CategoryRepositoryFacade
	WorkplaceRepo WorkplaceRepositoryFacade
}
