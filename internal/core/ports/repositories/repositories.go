package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Provides a single point for dependency injection.
type RepositoryProvider struct {
	ResidentRepo    ResidentRepositoryFacade
	SupplierRepo    SupplierRepositoryFacade
	ChargeRepo      ChargeRepositoryFacade
	PaymentRepo     PaymentRepositoryFacade
	MaintenanceRepo MaintenanceRepositoryFacade
	ReportingRepo   ReportingRepository
}
