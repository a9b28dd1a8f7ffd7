// Package seed fills the repositories with generated sample data. All
// records go through the public service operations, so everything the
// services enforce (age gates, balances, tax-id uniqueness) holds for the
// generated set too. The same seed value always yields the same data.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/service"
)

// Params sizes the generated data set.
type Params struct {
	Seed   int64
	People int
	Trips  int
}

// Seeder generates sample data through the service layer.
type Seeder struct {
	faker  *gofakeit.Faker
	log    *slog.Logger
	people *service.PersonService
	dests  *service.DestinationService
	comps  *service.CompanyService
	trans  *service.TransportService
	trips  *service.TripService
	tix    *service.TicketService
	excs   *service.ExcursionService
	pays   *service.PaymentService
}

// New constructs a Seeder over the given services.
func New(
	log *slog.Logger,
	people *service.PersonService,
	dests *service.DestinationService,
	comps *service.CompanyService,
	trans *service.TransportService,
	trips *service.TripService,
	tix *service.TicketService,
	excs *service.ExcursionService,
	pays *service.PaymentService,
) *Seeder {
	return &Seeder{
		log:    log,
		people: people,
		dests:  dests,
		comps:  comps,
		trans:  trans,
		trips:  trips,
		tix:    tix,
		excs:   excs,
		pays:   pays,
	}
}

// Run generates the full sample set: people, companies with transport
// types, destinations, trips with participants, tickets, excursions, and
// partial payments against each trip.
func (s *Seeder) Run(ctx context.Context, params Params) error {
	s.faker = gofakeit.New(params.Seed)

	people, err := s.seedPeople(ctx, params.People)
	if err != nil {
		return err
	}
	types, err := s.seedCompanies(ctx)
	if err != nil {
		return err
	}
	dests, err := s.seedDestinations(ctx)
	if err != nil {
		return err
	}
	if err := s.seedTrips(ctx, params.Trips, people, dests, types); err != nil {
		return err
	}
	if err := s.seedExcursions(ctx, people, dests); err != nil {
		return err
	}
	s.log.Info("seed complete", "people", len(people), "destinations", len(dests), "trips", params.Trips)
	return nil
}

func (s *Seeder) seedPeople(ctx context.Context, count int) ([]domain.Person, error) {
	people := make([]domain.Person, 0, count)
	for i := 0; i < count; i++ {
		p, err := s.people.Create(ctx, service.CreatePersonInput{
			Name:           s.faker.Name(),
			Phone:          s.faker.Phone(),
			Identification: s.faker.Numerify("###########"),
			BirthDate: s.faker.DateRange(
				time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC),
			),
		})
		if err != nil {
			return nil, fmt.Errorf("seed: person %d: %w", i, err)
		}
		people = append(people, p)
	}
	return people, nil
}

func (s *Seeder) seedCompanies(ctx context.Context) ([]domain.TransportType, error) {
	kinds := []string{"plane", "bus", "boat", "train"}
	var types []domain.TransportType
	for i := 0; i < 3; i++ {
		c, err := s.comps.Create(ctx, service.CreateCompanyInput{
			Name:  s.faker.Company(),
			TaxID: s.faker.Numerify("##.###.###/0001-##"),
			Phone: s.faker.Phone(),
		})
		if err != nil {
			return nil, fmt.Errorf("seed: company %d: %w", i, err)
		}
		for j := 0; j < 2; j++ {
			tt, err := s.trans.CreateType(ctx, kinds[(i+j)%len(kinds)], c.ID)
			if err != nil {
				return nil, fmt.Errorf("seed: transport type: %w", err)
			}
			types = append(types, tt)
		}
	}
	return types, nil
}

func (s *Seeder) seedDestinations(ctx context.Context) ([]domain.Destination, error) {
	var dests []domain.Destination
	for i := 0; i < 6; i++ {
		d, err := s.dests.Create(ctx, service.CreateDestinationInput{
			City:        s.faker.City(),
			Country:     s.faker.Country(),
			Description: s.faker.Sentence(8),
		})
		if err != nil {
			return nil, fmt.Errorf("seed: destination %d: %w", i, err)
		}
		dests = append(dests, d)
	}
	return dests, nil
}

func (s *Seeder) seedTrips(ctx context.Context, count int, people []domain.Person, dests []domain.Destination, types []domain.TransportType) error {
	for i := 0; i < count; i++ {
		start := s.faker.DateRange(
			time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
		)
		first := dests[i%len(dests)]
		second := dests[(i+1)%len(dests)]
		trip, err := s.trips.Create(ctx, service.CreateTripInput{
			Title:          fmt.Sprintf("%s and %s", first.City, second.City),
			StartDate:      start,
			EndDate:        start.AddDate(0, 0, s.faker.Number(3, 14)),
			TotalPrice:     s.faker.Float64Range(800, 5000),
			DestinationIDs: []uuid.UUID{first.ID, second.ID},
		})
		if err != nil {
			return fmt.Errorf("seed: trip %d: %w", i, err)
		}

		traveller := people[i%len(people)]
		companion := people[(i+1)%len(people)]
		for _, pid := range []uuid.UUID{traveller.ID, companion.ID} {
			if err := s.trips.AddParticipant(ctx, trip.ID, pid); err != nil {
				return fmt.Errorf("seed: participant: %w", err)
			}
		}

		if err := s.seedTickets(ctx, trip, first, second, traveller, types); err != nil {
			return err
		}
		if err := s.seedPayments(ctx, trip, traveller); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) seedTickets(ctx context.Context, trip domain.Trip, first, second domain.Destination, traveller domain.Person, types []domain.TransportType) error {
	dep, _ := domain.NewTimeOfDay(s.faker.Number(5, 14), 0)
	arr, _ := domain.NewTimeOfDay(dep.Hour+s.faker.Number(1, 8), 30)

	outbound, err := s.tix.Create(ctx, service.CreateTicketInput{
		TripID:          trip.ID,
		TransportTypeID: types[s.faker.Number(0, len(types)-1)].ID,
		Origin:          first.City,
		Destination:     second.City,
		TravelDate:      trip.StartDate,
		Departure:       &dep,
		Arrival:         &arr,
		Price:           ptr(s.faker.Float64Range(80, 600)),
	})
	if err != nil {
		return fmt.Errorf("seed: ticket: %w", err)
	}

	if err := s.tix.MarkPurchased(ctx, outbound.ID, traveller.ID,
		fmt.Sprintf("%d%s", s.faker.Number(1, 30), s.faker.RandomString([]string{"A", "B", "C", "D"})),
		s.faker.Numerify("LOC###"),
	); err != nil {
		return fmt.Errorf("seed: ticket purchase: %w", err)
	}

	// return leg stays pending and unpriced
	_, err = s.tix.Create(ctx, service.CreateTicketInput{
		TripID:          trip.ID,
		TransportTypeID: types[s.faker.Number(0, len(types)-1)].ID,
		Origin:          second.City,
		Destination:     first.City,
		TravelDate:      trip.EndDate,
	})
	if err != nil {
		return fmt.Errorf("seed: return ticket: %w", err)
	}
	return nil
}

func (s *Seeder) seedPayments(ctx context.Context, trip domain.Trip, payer domain.Person) error {
	// pay roughly half the trip up front, split across two methods
	half := trip.TotalPrice / 2

	_, err := s.pays.Create(ctx, service.CreatePaymentInput{
		TripID:     trip.ID,
		PersonID:   payer.ID,
		Amount:     half * 0.6,
		Method:     "pix",
		Date:       trip.StartDate.AddDate(0, -1, 0),
		PayerTaxID: s.faker.Numerify("###.###.###-##"),
	})
	if err != nil {
		return fmt.Errorf("seed: pix payment: %w", err)
	}

	_, err = s.pays.Create(ctx, service.CreatePaymentInput{
		TripID:     trip.ID,
		PersonID:   payer.ID,
		Amount:     half * 0.4,
		Method:     "card",
		Date:       trip.StartDate.AddDate(0, 0, -14),
		CardNumber: s.faker.Numerify("#### #### #### ####"),
		CardBrand:  s.faker.RandomString([]string{"Visa", "Mastercard", "Elo"}),
	})
	if err != nil {
		return fmt.Errorf("seed: card payment: %w", err)
	}
	return nil
}

func (s *Seeder) seedExcursions(ctx context.Context, people []domain.Person, dests []domain.Destination) error {
	attractions := []string{
		"Old Town Walk", "River Cruise", "Museum of Modern Art",
		"Street Food Tour", "Botanical Garden", "Harbor Lights",
	}
	for i, name := range attractions {
		d := dests[i%len(dests)]
		start, _ := domain.NewTimeOfDay(s.faker.Number(8, 15), 0)
		end, _ := domain.NewTimeOfDay(start.Hour+s.faker.Number(1, 4), 0)
		_, err := s.excs.Create(ctx, service.CreateExcursionInput{
			City:          d.City,
			Attraction:    name,
			StartTime:     start,
			EndTime:       end,
			Price:         s.faker.Float64Range(20, 250),
			PersonID:      people[i%len(people)].ID,
			Date:          s.faker.DateRange(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)),
			DestinationID: &d.ID,
		})
		if err != nil {
			return fmt.Errorf("seed: excursion %q: %w", name, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
