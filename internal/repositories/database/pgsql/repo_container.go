package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mpcoutinho/condo_admin_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	residentRepo := newPgxResidentRepository(dbPool)
	supplierRepo := newPgxSupplierRepository(dbPool)
	chargeRepo := newPgxChargeRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	maintenanceRepo := newPgxMaintenanceRepository(dbPool)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ResidentRepo:    residentRepo,
		SupplierRepo:    supplierRepo,
		ChargeRepo:      chargeRepo,
		PaymentRepo:     paymentRepo,
		MaintenanceRepo: maintenanceRepo,
		ReportingRepo:   reportingRepo,
	}
}
