// Package flight declares the read-model contract for flight search.
// This service never writes flight inventory.
package flight

import (
	"context"

	"github.com/vuelasur/booking/pkg/dto"
)

// Repository reads the flight search model.
//
// Search returns at most limit flights matching the filter, ordered by
// economy price, departure time and stop count, all ascending.
// PopularRoutes ranks routes by confirmed bookings over the last 30
// days. PriceTrends aggregates economy fares per departure date over
// the next 90 days on one route.
type Repository interface {
	Search(ctx context.Context, filter dto.FlightSearchFilter, limit int) ([]dto.FlightRead, error)
	PopularRoutes(ctx context.Context, limit int) ([]dto.PopularRouteRead, error)
	PriceTrends(ctx context.Context, fromAirport, toAirport string) ([]dto.PriceTrendRead, error)
}
