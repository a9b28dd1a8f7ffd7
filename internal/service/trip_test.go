package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/service"
)

// ---- Create tests ----------------------------------------------------------

func TestTripService_Create_DefaultOrders(t *testing.T) {
	f := newFixtures()
	d1 := f.destination(t, "Manaus", "Brazil")
	d2 := f.destination(t, "Belem", "Brazil")

	got, err := f.tripSvc.Create(context.Background(), service.CreateTripInput{
		Title:          "Norte",
		StartDate:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		TotalPrice:     1000,
		DestinationIDs: []uuid.UUID{d1.ID, d2.ID},
	})

	require.NoError(t, err)
	require.Len(t, got.Destinations, 2)
	assert.Equal(t, d1.ID, got.Destinations[0].DestinationID)
	assert.Equal(t, 1, got.Destinations[0].Order)
	assert.Equal(t, d2.ID, got.Destinations[1].DestinationID)
	assert.Equal(t, 2, got.Destinations[1].Order)
}

func TestTripService_Create_ExplicitOrdersSorted(t *testing.T) {
	f := newFixtures()
	d1 := f.destination(t, "Manaus", "Brazil")
	d2 := f.destination(t, "Belem", "Brazil")

	got, err := f.tripSvc.Create(context.Background(), service.CreateTripInput{
		Title:          "Norte",
		StartDate:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		TotalPrice:     1000,
		DestinationIDs: []uuid.UUID{d1.ID, d2.ID},
		Orders:         []int{2, 1},
	})

	require.NoError(t, err)
	require.Len(t, got.Destinations, 2)
	assert.Equal(t, d2.ID, got.Destinations[0].DestinationID)
	assert.Equal(t, d1.ID, got.Destinations[1].DestinationID)
}

func TestTripService_Create_OrderCountMismatch(t *testing.T) {
	f := newFixtures()
	d1 := f.destination(t, "Manaus", "Brazil")

	_, err := f.tripSvc.Create(context.Background(), service.CreateTripInput{
		Title:          "Norte",
		StartDate:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		DestinationIDs: []uuid.UUID{d1.ID},
		Orders:         []int{1, 2},
	})

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestTripService_Create_UnknownDestination(t *testing.T) {
	f := newFixtures()

	_, err := f.tripSvc.Create(context.Background(), service.CreateTripInput{
		Title:          "Norte",
		StartDate:      time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
		DestinationIDs: []uuid.UUID{uuid.New()},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_Create_NoDestinations(t *testing.T) {
	f := newFixtures()

	_, err := f.tripSvc.Create(context.Background(), service.CreateTripInput{
		Title:     "Norte",
		StartDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

// ---- participant tests -----------------------------------------------------

func TestTripService_AddParticipant_SetSemantics(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")
	tr := f.trip(t, "Norte", 1000, d.ID)
	p := f.person(t, "Ana Souza", "12345678901")

	require.NoError(t, f.tripSvc.AddParticipant(context.Background(), tr.ID, p.ID))
	require.NoError(t, f.tripSvc.AddParticipant(context.Background(), tr.ID, p.ID))

	got, err := f.tripSvc.Get(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Len(t, got.ParticipantIDs, 1)
}

func TestTripService_AddParticipant_UnknownPerson(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")
	tr := f.trip(t, "Norte", 1000, d.ID)

	err := f.tripSvc.AddParticipant(context.Background(), tr.ID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_RemoveParticipant_UnknownIsNoop(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")
	tr := f.trip(t, "Norte", 1000, d.ID)
	p := f.person(t, "Ana Souza", "12345678901")
	require.NoError(t, f.tripSvc.AddParticipant(context.Background(), tr.ID, p.ID))

	require.NoError(t, f.tripSvc.RemoveParticipant(context.Background(), tr.ID, uuid.New()))

	got, err := f.tripSvc.Get(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Len(t, got.ParticipantIDs, 1)
}

// ---- destination ordering tests --------------------------------------------

func TestTripService_ReorderDestinations(t *testing.T) {
	f := newFixtures()
	d1 := f.destination(t, "Manaus", "Brazil")
	d2 := f.destination(t, "Belem", "Brazil")
	d3 := f.destination(t, "Santarem", "Brazil")
	tr := f.trip(t, "Norte", 1000, d1.ID, d2.ID, d3.ID)

	err := f.tripSvc.ReorderDestinations(context.Background(), tr.ID, map[uuid.UUID]int{d2.ID: 1, d1.ID: 2, d3.ID: 3})

	require.NoError(t, err)
	got, err := f.tripSvc.Get(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, d2.ID, got.Destinations[0].DestinationID)
	assert.Equal(t, d1.ID, got.Destinations[1].DestinationID)
	assert.Equal(t, d3.ID, got.Destinations[2].DestinationID)
}

func TestTripService_ReorderDestinations_InvalidOrderLeavesTripUntouched(t *testing.T) {
	f := newFixtures()
	d1 := f.destination(t, "Manaus", "Brazil")
	d2 := f.destination(t, "Belem", "Brazil")
	tr := f.trip(t, "Norte", 1000, d1.ID, d2.ID)

	err := f.tripSvc.ReorderDestinations(context.Background(), tr.ID, map[uuid.UUID]int{d2.ID: 0})

	require.ErrorIs(t, err, domain.ErrInvalidValue)
	got, err := f.tripSvc.Get(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.Equal(t, d1.ID, got.Destinations[0].DestinationID)
}

func TestTripService_AddDestination(t *testing.T) {
	f := newFixtures()
	d1 := f.destination(t, "Manaus", "Brazil")
	d2 := f.destination(t, "Belem", "Brazil")
	tr := f.trip(t, "Norte", 1000, d1.ID)

	require.NoError(t, f.tripSvc.AddDestination(context.Background(), tr.ID, d2.ID, 1))

	got, err := f.tripSvc.Get(context.Background(), tr.ID)
	require.NoError(t, err)
	require.Len(t, got.Destinations, 2)
}

// ---- balance tests ---------------------------------------------------------

func TestTripService_OutstandingBalance(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")
	tr := f.trip(t, "Norte", 1000, d.ID)
	p := f.person(t, "Ana Souza", "12345678901")

	_, err := f.paymentSvc.Create(context.Background(), service.CreatePaymentInput{
		TripID:   tr.ID,
		PersonID: p.ID,
		Amount:   600,
		Method:   "cash",
	})
	require.NoError(t, err)

	paid, err := f.tripSvc.TotalPaid(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.InDelta(t, 600, paid, 1e-9)

	balance, err := f.tripSvc.OutstandingBalance(context.Background(), tr.ID)
	require.NoError(t, err)
	assert.InDelta(t, 400, balance, 1e-9)
}

func TestTripService_OutstandingBalance_UnknownTripIsZero(t *testing.T) {
	f := newFixtures()

	balance, err := f.tripSvc.OutstandingBalance(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Zero(t, balance)
}

// ---- listing tests ---------------------------------------------------------

func TestTripService_ListInProgress(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")
	tr := f.trip(t, "Norte", 1000, d.ID) // 2026-11-01 through 2026-11-10

	during, err := f.tripSvc.ListInProgress(context.Background(), time.Date(2026, 11, 5, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, during, 1)
	assert.Equal(t, tr.ID, during[0].ID)

	after, err := f.tripSvc.ListInProgress(context.Background(), time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, after)
}

func TestTripService_UpdateTotalPrice_NegativeRejected(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")
	tr := f.trip(t, "Norte", 1000, d.ID)

	err := f.tripSvc.UpdateTotalPrice(context.Background(), tr.ID, -1)

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}
