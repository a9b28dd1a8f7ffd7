package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func person(t *testing.T, name, identification string) domain.Person {
	t.Helper()
	p, err := domain.NewPerson(name, "phone", identification, "cpf", day(1990, 1, 1), day(2025, 1, 1))
	require.NoError(t, err)
	return p
}

// ---- CRUD contract ---------------------------------------------------------

func TestPersonRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	r := repo.NewPersonRepo()

	created, err := r.Create(ctx, person(t, "Ana", "11122233344"))
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	got.SetPhone("new phone")
	updated, err := r.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "new phone", updated.Phone)

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, r.Delete(ctx, created.ID))

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestPersonRepo_UpdateUnknownIsNotFound(t *testing.T) {
	r := repo.NewPersonRepo()

	_, err := r.Update(context.Background(), person(t, "Ana", "11122233344"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPersonRepo_GetByIdentification(t *testing.T) {
	ctx := context.Background()
	r := repo.NewPersonRepo()
	_, err := r.Create(ctx, person(t, "Ana", "11122233344"))
	require.NoError(t, err)

	got, err := r.GetByIdentification(ctx, "11122233344")
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)

	_, err = r.GetByIdentification(ctx, "00000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- finders ---------------------------------------------------------------

func TestCompanyRepo_GetByTaxIDIsExactMatch(t *testing.T) {
	ctx := context.Background()
	r := repo.NewCompanyRepo()
	c, err := domain.NewCompany("Viação Sul", "12345678000199", "555")
	require.NoError(t, err)
	_, err = r.Create(ctx, c)
	require.NoError(t, err)

	got, err := r.GetByTaxID(ctx, "12345678000199")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	// exact, case-sensitive match only
	_, err = r.GetByTaxID(ctx, "12345678000198")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	n, err := r.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDestinationRepo_ListByCityIgnoresCase(t *testing.T) {
	ctx := context.Background()
	r := repo.NewDestinationRepo()
	_, err := r.Create(ctx, domain.NewDestination("Salvador", "Brasil", ""))
	require.NoError(t, err)
	_, err = r.Create(ctx, domain.NewDestination("Recife", "Brasil", ""))
	require.NoError(t, err)

	byCity, err := r.ListByCity(ctx, "salvador")
	require.NoError(t, err)
	assert.Len(t, byCity, 1)

	byCountry, err := r.ListByCountry(ctx, "BRASIL")
	require.NoError(t, err)
	assert.Len(t, byCountry, 2)
}

func TestTicketRepo_Filters(t *testing.T) {
	ctx := context.Background()
	r := repo.NewTicketRepo()
	tripID := uuid.New()
	buyer := uuid.New()

	tk, err := domain.NewTicket(tripID, uuid.New(), "A", "B", day(2025, 3, 2), domain.NewTicketParams{})
	require.NoError(t, err)
	tk.MarkPurchased(buyer, "1A", "")
	_, err = r.Create(ctx, tk)
	require.NoError(t, err)

	other, err := domain.NewTicket(uuid.New(), uuid.New(), "B", "C", day(2025, 3, 3), domain.NewTicketParams{})
	require.NoError(t, err)
	_, err = r.Create(ctx, other)
	require.NoError(t, err)

	byTrip, err := r.ListByTrip(ctx, tripID)
	require.NoError(t, err)
	assert.Len(t, byTrip, 1)

	byBuyer, err := r.ListByPurchaser(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, byBuyer, 1)

	none, err := r.ListByPurchaser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPaymentRepo_ListByTripAndPerson(t *testing.T) {
	ctx := context.Background()
	r := repo.NewPaymentRepo()
	tripID := uuid.New()
	personID := uuid.New()

	for _, amount := range []float64{100, 250} {
		p, err := domain.NewPayment(day(2025, 2, 1), amount, personID, tripID, domain.PaymentCash, domain.PaymentData{})
		require.NoError(t, err)
		_, err = r.Create(ctx, p)
		require.NoError(t, err)
	}

	byTrip, err := r.ListByTrip(ctx, tripID)
	require.NoError(t, err)
	assert.Len(t, byTrip, 2)

	byPerson, err := r.ListByPerson(ctx, personID)
	require.NoError(t, err)
	assert.Len(t, byPerson, 2)

	empty, err := r.ListByTrip(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestExcursionRepo_Search(t *testing.T) {
	ctx := context.Background()
	r := repo.NewExcursionRepo()
	start, _ := domain.NewTimeOfDay(9, 0)
	end, _ := domain.NewTimeOfDay(12, 0)

	e, err := domain.NewExcursion("Rio de Janeiro", "Cristo Redentor", start, end, 150, uuid.New(), day(2025, 3, 4), nil)
	require.NoError(t, err)
	_, err = r.Create(ctx, e)
	require.NoError(t, err)

	byAttraction, err := r.SearchByAttraction(ctx, "cristo")
	require.NoError(t, err)
	assert.Len(t, byAttraction, 1)

	byCity, err := r.ListByCity(ctx, "rio de janeiro")
	require.NoError(t, err)
	assert.Len(t, byCity, 1)
}
