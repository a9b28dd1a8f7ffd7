package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/mfdias/tripdesk/internal/domain"
	"github.com/mfdias/tripdesk/internal/repo"
)

// ReportService derives read-only aggregates from the repositories at
// call time. Rankings are deterministic: ties break on destination id or
// attraction name so repeated calls over the same data agree.
type ReportService struct {
	trips        repo.TripRepo
	destinations repo.DestinationRepo
	excursions   repo.ExcursionRepo
	payments     repo.PaymentRepo
}

// NewReportService constructs a ReportService over the given repositories.
func NewReportService(trips repo.TripRepo, destinations repo.DestinationRepo, excursions repo.ExcursionRepo, payments repo.PaymentRepo) *ReportService {
	return &ReportService{trips: trips, destinations: destinations, excursions: excursions, payments: payments}
}

// PopularDestinations ranks destinations by how many trips visit them,
// most visited first. A limit of 0 or less means no limit. Destinations
// never visited do not appear.
func (s *ReportService) PopularDestinations(ctx context.Context, limit int) ([]domain.DestinationCount, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.PopularDestinations: %w", err)
	}

	counts := map[uuid.UUID]int{}
	for _, t := range trips {
		for _, td := range t.Destinations {
			counts[td.DestinationID]++
		}
	}

	ranked := make([]domain.DestinationCount, 0, len(counts))
	for destID, n := range counts {
		dest, err := s.destinations.GetByID(ctx, destID)
		if err != nil {
			continue // dangling reference, skip
		}
		ranked = append(ranked, domain.DestinationCount{Destination: dest, Trips: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Trips != ranked[j].Trips {
			return ranked[i].Trips > ranked[j].Trips
		}
		return ranked[i].Destination.ID.String() < ranked[j].Destination.ID.String()
	})
	return clip(ranked, limit), nil
}

// MostExpensiveDestinations ranks destinations by the average share of
// trip budget spent there, highest first. Each trip's total price is
// split evenly across its destinations; the shares are then averaged per
// destination over the trips visiting it.
func (s *ReportService) MostExpensiveDestinations(ctx context.Context, limit int) ([]domain.DestinationSpend, error) {
	ranked, err := s.destinationSpends(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.MostExpensiveDestinations: %w", err)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageSpend != ranked[j].AverageSpend {
			return ranked[i].AverageSpend > ranked[j].AverageSpend
		}
		return ranked[i].Destination.ID.String() < ranked[j].Destination.ID.String()
	})
	return clip(ranked, limit), nil
}

// CheapestDestinations ranks destinations by average trip budget share,
// lowest first.
func (s *ReportService) CheapestDestinations(ctx context.Context, limit int) ([]domain.DestinationSpend, error) {
	ranked, err := s.destinationSpends(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.CheapestDestinations: %w", err)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageSpend != ranked[j].AverageSpend {
			return ranked[i].AverageSpend < ranked[j].AverageSpend
		}
		return ranked[i].Destination.ID.String() < ranked[j].Destination.ID.String()
	})
	return clip(ranked, limit), nil
}

// PopularExcursions ranks attraction names by excursion count, most
// booked first. Attraction names are grouped without case.
func (s *ReportService) PopularExcursions(ctx context.Context, limit int) ([]domain.AttractionCount, error) {
	excursions, err := s.excursions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.PopularExcursions: %w", err)
	}

	counts := map[string]int{}
	names := map[string]string{}
	for _, e := range excursions {
		key := strings.ToLower(e.Attraction)
		counts[key]++
		if _, ok := names[key]; !ok {
			names[key] = e.Attraction
		}
	}

	ranked := make([]domain.AttractionCount, 0, len(counts))
	for key, n := range counts {
		ranked = append(ranked, domain.AttractionCount{Attraction: names[key], Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Attraction < ranked[j].Attraction
	})
	return clip(ranked, limit), nil
}

// MostExpensiveExcursions returns excursions sorted by price, highest
// first.
func (s *ReportService) MostExpensiveExcursions(ctx context.Context, limit int) ([]domain.Excursion, error) {
	ranked, err := s.excursionsByPrice(ctx, func(a, b domain.Excursion) bool { return a.Price > b.Price })
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.MostExpensiveExcursions: %w", err)
	}
	return clip(ranked, limit), nil
}

// CheapestExcursions returns excursions sorted by price, lowest first.
func (s *ReportService) CheapestExcursions(ctx context.Context, limit int) ([]domain.Excursion, error) {
	ranked, err := s.excursionsByPrice(ctx, func(a, b domain.Excursion) bool { return a.Price < b.Price })
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.CheapestExcursions: %w", err)
	}
	return clip(ranked, limit), nil
}

// TripFinance summarizes a trip's paid-versus-total state. An unknown
// trip yields the all-zero summary rather than an error; a trip with a
// zero total price reports 0 percent paid.
func (s *ReportService) TripFinance(ctx context.Context, tripID uuid.UUID) (domain.TripFinance, error) {
	t, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.TripFinance{}, nil
	}
	payments, err := s.payments.ListByTrip(ctx, tripID)
	if err != nil {
		return domain.TripFinance{}, fmt.Errorf("service.ReportService.TripFinance: %w", err)
	}

	paid := sumAmounts(payments)
	finance := domain.TripFinance{
		Total:       t.TotalPrice,
		Paid:        paid,
		Outstanding: t.TotalPrice - paid,
	}
	if t.TotalPrice > 0 {
		finance.PercentPaid = paid / t.TotalPrice * 100
	}
	return finance, nil
}

// destinationSpends computes the average trip budget share per
// destination. Dangling destination references are skipped.
func (s *ReportService) destinationSpends(ctx context.Context) ([]domain.DestinationSpend, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, err
	}

	sums := map[uuid.UUID]float64{}
	visits := map[uuid.UUID]int{}
	for _, t := range trips {
		if len(t.Destinations) == 0 {
			continue
		}
		share := t.TotalPrice / float64(len(t.Destinations))
		for _, td := range t.Destinations {
			sums[td.DestinationID] += share
			visits[td.DestinationID]++
		}
	}

	spends := make([]domain.DestinationSpend, 0, len(sums))
	for destID, sum := range sums {
		dest, err := s.destinations.GetByID(ctx, destID)
		if err != nil {
			continue
		}
		spends = append(spends, domain.DestinationSpend{
			Destination:  dest,
			AverageSpend: sum / float64(visits[destID]),
		})
	}
	return spends, nil
}

func (s *ReportService) excursionsByPrice(ctx context.Context, less func(a, b domain.Excursion) bool) ([]domain.Excursion, error) {
	excursions, err := s.excursions.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(excursions, func(i, j int) bool {
		if excursions[i].Price != excursions[j].Price {
			return less(excursions[i], excursions[j])
		}
		return excursions[i].ID.String() < excursions[j].ID.String()
	})
	return excursions, nil
}

// clip trims a ranking to the requested size; a limit of 0 or less keeps
// everything.
func clip[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
