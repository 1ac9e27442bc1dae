package router

import (
	"fmt"
	"time"

	"riavet-admin/internal/adapters/api/agendasvc"
	"riavet-admin/internal/adapters/api/billingsvc"
	"riavet-admin/internal/adapters/api/patientsvc"
	"riavet-admin/internal/adapters/api/recordsvc"
	"riavet-admin/internal/config"
	"riavet-admin/internal/domain/appointments"
	"riavet-admin/internal/domain/invoices"
	"riavet-admin/internal/domain/owners"
	"riavet-admin/internal/domain/patients"
	"riavet-admin/internal/domain/records"
	"riavet-admin/internal/domain/veterinarians"
	"riavet-admin/internal/platform/httpclient"
	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/metrics"
)

// Backends son los repositorios de cada módulo. En producción todos son
// clients REST; los tests pueden pasar fakes.
type Backends struct {
	Patients      patients.Repository
	Owners        owners.Repository
	Veterinarians veterinarians.Repository
	Appointments  appointments.Repository
	Invoices      invoices.Repository
	Records       records.Repository
}

// NewBackends arma un httpclient por servicio. Veterinarios y citas
// comparten el servicio de agenda.
func NewBackends(cfg config.BackendsConfig, timeout time.Duration, log logger.Logger, m *metrics.Collector) (Backends, error) {
	newClient := func(service, baseURL string) (*httpclient.Client, error) {
		c, err := httpclient.NewWithOptions(httpclient.Options{
			BaseURL: baseURL,
			Service: service,
			Timeout: timeout,
			Log:     log,
			Metrics: m,
		})
		if err != nil {
			return nil, fmt.Errorf("%s backend: %w", service, err)
		}
		return c, nil
	}

	patientsHTTP, err := newClient("patients", cfg.PatientsBaseURL)
	if err != nil {
		return Backends{}, err
	}
	recordsHTTP, err := newClient("records", cfg.RecordsBaseURL)
	if err != nil {
		return Backends{}, err
	}
	invoicesHTTP, err := newClient("invoices", cfg.InvoicesBaseURL)
	if err != nil {
		return Backends{}, err
	}
	agendaHTTP, err := newClient("appointments", cfg.AppointmentsBaseURL)
	if err != nil {
		return Backends{}, err
	}

	return Backends{
		Patients:      patientsvc.NewPatientsClient(patientsHTTP),
		Owners:        patientsvc.NewOwnersClient(patientsHTTP),
		Veterinarians: agendasvc.NewVeterinariansClient(agendaHTTP),
		Appointments:  agendasvc.NewAppointmentsClient(agendaHTTP),
		Invoices:      billingsvc.NewInvoicesClient(invoicesHTTP),
		Records:       recordsvc.NewRecordsClient(recordsHTTP),
	}, nil
}
