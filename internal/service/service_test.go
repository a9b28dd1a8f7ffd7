package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
	"github.com/mfdias/tripdesk/internal/service"
)

// fixtures wires every service over fresh in-memory repositories so
// cross-service tests (trip balances, ticket summaries, reports) can run
// against real storage instead of a pile of mocks.
type fixtures struct {
	people       repo.PersonRepo
	destinations repo.DestinationRepo
	companies    repo.CompanyRepo
	types        repo.TransportTypeRepo
	trips        repo.TripRepo
	tickets      repo.TicketRepo
	excursions   repo.ExcursionRepo
	payments     repo.PaymentRepo

	personSvc    *service.PersonService
	destSvc      *service.DestinationService
	companySvc   *service.CompanyService
	transportSvc *service.TransportService
	tripSvc      *service.TripService
	ticketSvc    *service.TicketService
	excursionSvc *service.ExcursionService
	paymentSvc   *service.PaymentService
	reportSvc    *service.ReportService
}

func newFixtures() *fixtures {
	f := &fixtures{
		people:       repo.NewPersonRepo(),
		destinations: repo.NewDestinationRepo(),
		companies:    repo.NewCompanyRepo(),
		types:        repo.NewTransportTypeRepo(),
		trips:        repo.NewTripRepo(),
		tickets:      repo.NewTicketRepo(),
		excursions:   repo.NewExcursionRepo(),
		payments:     repo.NewPaymentRepo(),
	}
	f.personSvc = service.NewPersonService(f.people)
	f.destSvc = service.NewDestinationService(f.destinations)
	f.companySvc = service.NewCompanyService(f.companies)
	f.transportSvc = service.NewTransportService(f.types, f.companies)
	f.tripSvc = service.NewTripService(f.trips, f.people, f.destinations, f.payments)
	f.ticketSvc = service.NewTicketService(f.tickets, f.types, f.trips, f.people)
	f.excursionSvc = service.NewExcursionService(f.excursions, f.people, f.destinations)
	f.paymentSvc = service.NewPaymentService(f.payments, f.people, f.trips)
	f.reportSvc = service.NewReportService(f.trips, f.destinations, f.excursions, f.payments)
	return f
}

// ---- fixture helpers -------------------------------------------------------

func (f *fixtures) person(t *testing.T, name, identification string) domain.Person {
	t.Helper()
	p, err := f.personSvc.Create(context.Background(), service.CreatePersonInput{
		Name:           name,
		Phone:          "11 99999-0000",
		Identification: identification,
		BirthDate:      time.Date(1990, 5, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return p
}

func (f *fixtures) destination(t *testing.T, city, country string) domain.Destination {
	t.Helper()
	d, err := f.destSvc.Create(context.Background(), service.CreateDestinationInput{
		City:    city,
		Country: country,
	})
	require.NoError(t, err)
	return d
}

func (f *fixtures) trip(t *testing.T, title string, totalPrice float64, destinationIDs ...uuid.UUID) domain.Trip {
	t.Helper()
	tr, err := f.tripSvc.Create(context.Background(), service.CreateTripInput{
		Title:          title,
		StartDate:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		TotalPrice:     totalPrice,
		DestinationIDs: destinationIDs,
	})
	require.NoError(t, err)
	return tr
}

func (f *fixtures) company(t *testing.T, name, taxID string) domain.Company {
	t.Helper()
	c, err := f.companySvc.Create(context.Background(), service.CreateCompanyInput{
		Name:  name,
		TaxID: taxID,
		Phone: "11 3333-0000",
	})
	require.NoError(t, err)
	return c
}

func (f *fixtures) transportType(t *testing.T, kind string, companyID uuid.UUID) domain.TransportType {
	t.Helper()
	tt, err := f.transportSvc.CreateType(context.Background(), kind, companyID)
	require.NoError(t, err)
	return tt
}

func ptr[T any](v T) *T { return &v }
