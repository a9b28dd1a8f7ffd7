package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/service"
)

func TestDestinationService_Create_Valid(t *testing.T) {
	f := newFixtures()

	got, err := f.destSvc.Create(context.Background(), service.CreateDestinationInput{
		City:        "Manaus",
		Country:     "Brazil",
		Description: "Gateway to the Amazon",
	})

	require.NoError(t, err)
	assert.Equal(t, "Manaus, Brazil", got.FullName())
}

func TestDestinationService_Create_MissingCountry(t *testing.T) {
	f := newFixtures()

	_, err := f.destSvc.Create(context.Background(), service.CreateDestinationInput{City: "Manaus"})

	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.ErrorContains(t, err, "country")
}

func TestDestinationService_UpdateDescription(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")

	require.NoError(t, f.destSvc.UpdateDescription(context.Background(), d.ID, "River city"))

	got, err := f.destSvc.Get(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, "River city", got.Description)
}

func TestDestinationService_Finders_CaseInsensitive(t *testing.T) {
	f := newFixtures()
	f.destination(t, "Manaus", "Brazil")
	f.destination(t, "Belem", "Brazil")
	f.destination(t, "Cusco", "Peru")

	byCity, err := f.destSvc.FindByCity(context.Background(), "manaus")
	require.NoError(t, err)
	assert.Len(t, byCity, 1)

	byCountry, err := f.destSvc.FindByCountry(context.Background(), "BRAZIL")
	require.NoError(t, err)
	assert.Len(t, byCountry, 2)
}

func TestDestinationService_Delete_ThenGetNotFound(t *testing.T) {
	f := newFixtures()
	d := f.destination(t, "Manaus", "Brazil")

	require.NoError(t, f.destSvc.Delete(context.Background(), d.ID))

	_, err := f.destSvc.Get(context.Background(), d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDestinationService_Get_Unknown(t *testing.T) {
	f := newFixtures()

	_, err := f.destSvc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
