package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfdias/tripdesk/internal/domain"
)

func destinationsFixture(t *testing.T, n int) []domain.TripDestination {
	t.Helper()
	ds := make([]domain.TripDestination, 0, n)
	for i := 1; i <= n; i++ {
		td, err := domain.NewTripDestination(uuid.New(), i)
		require.NoError(t, err)
		ds = append(ds, td)
	}
	return ds
}

func TestNewTripDestination_OrderBelowOneFails(t *testing.T) {
	_, err := domain.NewTripDestination(uuid.New(), 0)

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestNewTrip_Valid(t *testing.T) {
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000, destinationsFixture(t, 2))

	require.NoError(t, err)
	assert.Equal(t, 1000.0, trip.TotalPrice)
	assert.Equal(t, 9, trip.DurationDays())
}

func TestNewTrip_EndNotAfterStartFails(t *testing.T) {
	ds := destinationsFixture(t, 1)

	_, err := domain.NewTrip("Norte", date(2025, 3, 10), date(2025, 3, 10), 1000, ds)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	_, err = domain.NewTrip("Norte", date(2025, 3, 10), date(2025, 3, 1), 1000, ds)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestNewTrip_EndOneDayAfterStartSucceeds(t *testing.T) {
	_, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 2), 1000, destinationsFixture(t, 1))

	require.NoError(t, err)
}

func TestNewTrip_NegativePriceFails(t *testing.T) {
	_, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), -1, destinationsFixture(t, 1))

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestNewTrip_NoDestinationsFails(t *testing.T) {
	_, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestNewTrip_SortsDestinationsByOrder(t *testing.T) {
	first, _ := domain.NewTripDestination(uuid.New(), 3)
	second, _ := domain.NewTripDestination(uuid.New(), 1)
	third, _ := domain.NewTripDestination(uuid.New(), 2)

	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000,
		[]domain.TripDestination{first, second, third})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, []int{trip.Destinations[0].Order, trip.Destinations[1].Order, trip.Destinations[2].Order})
	assert.Equal(t, second.DestinationID, trip.Destinations[0].DestinationID)
}

func TestTrip_ParticipantsAreASet(t *testing.T) {
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000, destinationsFixture(t, 1))
	require.NoError(t, err)

	personID := uuid.New()
	trip.AddParticipant(personID)
	trip.AddParticipant(personID)

	assert.Len(t, trip.ParticipantIDs, 1)

	trip.RemoveParticipant(personID)
	assert.Empty(t, trip.ParticipantIDs)

	// removing again is a no-op
	trip.RemoveParticipant(personID)
	assert.Empty(t, trip.ParticipantIDs)
}

func TestTrip_Reorder(t *testing.T) {
	d1, _ := domain.NewTripDestination(uuid.New(), 1)
	d2, _ := domain.NewTripDestination(uuid.New(), 2)
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000,
		[]domain.TripDestination{d1, d2})
	require.NoError(t, err)

	// Move D2 to order 1. D1 keeps its value; the tie breaks by prior
	// relative position, so D1 still lists first.
	require.NoError(t, trip.Reorder(map[uuid.UUID]int{d2.DestinationID: 1}))

	assert.Equal(t, d1.DestinationID, trip.Destinations[0].DestinationID)
	assert.Equal(t, d2.DestinationID, trip.Destinations[1].DestinationID)
	assert.Equal(t, 1, trip.Destinations[1].Order)
}

func TestTrip_ReorderBelowOneFails(t *testing.T) {
	d1, _ := domain.NewTripDestination(uuid.New(), 1)
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000,
		[]domain.TripDestination{d1})
	require.NoError(t, err)

	err = trip.Reorder(map[uuid.UUID]int{d1.DestinationID: 0})

	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Equal(t, 1, trip.Destinations[0].Order)
}

func TestTrip_SetTotalPrice(t *testing.T) {
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000, destinationsFixture(t, 1))
	require.NoError(t, err)

	require.NoError(t, trip.SetTotalPrice(2500))
	assert.Equal(t, 2500.0, trip.TotalPrice)

	assert.ErrorIs(t, trip.SetTotalPrice(-10), domain.ErrInvalidValue)
	assert.Equal(t, 2500.0, trip.TotalPrice)
}

func TestTrip_PricePerParticipant(t *testing.T) {
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 900, destinationsFixture(t, 1))
	require.NoError(t, err)

	_, ok := trip.PricePerParticipant()
	assert.False(t, ok)

	trip.AddParticipant(uuid.New())
	trip.AddParticipant(uuid.New())
	trip.AddParticipant(uuid.New())

	share, ok := trip.PricePerParticipant()
	require.True(t, ok)
	assert.Equal(t, 300.0, share)
}

func TestTrip_WithinPaymentWindow(t *testing.T) {
	trip, err := domain.NewTrip("Norte", date(2025, 3, 1), date(2025, 3, 10), 1000, destinationsFixture(t, 1))
	require.NoError(t, err)

	assert.True(t, trip.WithinPaymentWindow(date(2025, 2, 28)))
	assert.True(t, trip.WithinPaymentWindow(date(2025, 3, 1)))
	assert.False(t, trip.WithinPaymentWindow(date(2025, 3, 2)))
}
