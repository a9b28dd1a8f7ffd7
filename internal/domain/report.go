package domain

import "github.com/google/uuid"

// Read-only views assembled by the reporting service. None of these types
// carries invariants of its own; they are snapshots derived from the
// repositories at call time.

// DestinationCount pairs a destination with the number of trips visiting it.
type DestinationCount struct {
	Destination Destination
	Trips       int
}

// DestinationSpend pairs a destination with the average per-destination
// share of the total price of the trips visiting it.
type DestinationSpend struct {
	Destination  Destination
	AverageSpend float64
}

// AttractionCount pairs an attraction name with its excursion count.
type AttractionCount struct {
	Attraction string
	Count      int
}

// TripFinance summarizes a trip's financial state. PercentPaid is 0 when
// the total price is 0.
type TripFinance struct {
	Total       float64
	Paid        float64
	Outstanding float64
	PercentPaid float64
}

// TicketSummary aggregates the purchase state of a trip's tickets.
// PurchasedBy counts purchased tickets per purchaser.
type TicketSummary struct {
	Total            int
	Purchased        int
	Pending          int
	TotalCost        float64
	PurchasedCost    float64
	PercentPurchased float64
	PurchasedBy      map[uuid.UUID]int
}
