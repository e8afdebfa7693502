// Package flight implements the flight search collaborator: filtered
// search, popular routes and price trends over the read model, with a
// Redis response cache in front.
package flight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vuelasur/booking/pkg/domain"
	flightdomain "github.com/vuelasur/booking/pkg/domain/flight"
	"github.com/vuelasur/booking/pkg/dto"
	"github.com/vuelasur/booking/pkg/provider"
	flightrepo "github.com/vuelasur/booking/pkg/repository/flight"
)

const (
	searchLimit        = 50
	popularRoutesLimit = 10

	searchKeyPrefix  = "flights:search:"
	popularRoutesKey = "flights:popular"
	trendsKeyPrefix  = "flights:trends:"
)

// Service answers flight search queries.
type Service struct {
	flights  flightrepo.Repository
	cache    provider.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// New creates a flight search service. cache may be nil when no cache
// is wired; cache errors always degrade silently to the database.
func New(
	flights flightrepo.Repository,
	cache provider.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		flights:  flights,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With("service", "flight"),
	}
}

// Endpoint is one side of a flight leg.
type Endpoint struct {
	Airport string `json:"airport"`
	City    string `json:"city"`
	Time    string `json:"time,omitempty"`
}

// Airline is the traveler-facing airline summary.
type Airline struct {
	Name               string `json:"name"`
	BaggageAllowance   string `json:"baggage_allowance"`
	CancellationPolicy string `json:"cancellation_policy"`
}

// Pricing carries cabin fares plus the IVA-inclusive economy price.
type Pricing struct {
	Economy        float64 `json:"economy"`
	Premium        float64 `json:"premium"`
	Business       float64 `json:"business"`
	EconomyWithTax float64 `json:"economy_with_tax"`
}

// Result is one flight in a search response.
type Result struct {
	FlightID       int64                     `json:"flight_id"`
	Airline        Airline                   `json:"airline"`
	FlightNumber   string                    `json:"flight_number"`
	Aircraft       string                    `json:"aircraft"`
	Departure      Endpoint                  `json:"departure"`
	Arrival        Endpoint                  `json:"arrival"`
	Duration       string                    `json:"duration"`
	Stops          int                       `json:"stops"`
	Pricing        Pricing                   `json:"pricing"`
	AvailableSeats int                       `json:"available_seats"`
	TotalSeats     int                       `json:"total_seats"`
	BookingClass   flightdomain.BookingClass `json:"booking_class"`
}

// PopularRoute is one entry of the popular-routes ranking.
type PopularRoute struct {
	From            Endpoint `json:"from"`
	To              Endpoint `json:"to"`
	PopularityScore int      `json:"popularity_score"`
	AveragePrice    float64  `json:"average_price"`
}

// PricePoint is one per-date aggregate of a route's economy fares.
type PricePoint struct {
	Date         string  `json:"date"`
	AveragePrice float64 `json:"average_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	FlightCount  int     `json:"flight_count"`
}

// Trends is the price-trend response for one route.
type Trends struct {
	Route struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"route"`
	PriceData []PricePoint `json:"price_data"`
}

// Search returns up to 50 flights matching the filter, cheapest and
// earliest first.
func (s *Service) Search(
	ctx context.Context,
	filter dto.FlightSearchFilter,
) ([]Result, error) {
	key := searchKeyPrefix + searchKey(filter)
	var cached []Result
	if s.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := s.flights.Search(ctx, filter, searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search flights: %w", err)
	}

	results := make([]Result, 0, len(rows))
	for i := range rows {
		results = append(results, mapFlight(&rows[i]))
	}
	s.logger.Info("Flight search served", "results", len(results))

	s.cacheSet(ctx, key, results)
	return results, nil
}

// PopularRoutes ranks the routes booked most over the last 30 days.
func (s *Service) PopularRoutes(ctx context.Context) ([]PopularRoute, error) {
	var cached []PopularRoute
	if s.cacheGet(ctx, popularRoutesKey, &cached) {
		return cached, nil
	}

	rows, err := s.flights.PopularRoutes(ctx, popularRoutesLimit)
	if err != nil {
		return nil, fmt.Errorf("popular routes: %w", err)
	}

	routes := make([]PopularRoute, 0, len(rows))
	for _, row := range rows {
		routes = append(routes, PopularRoute{
			From:            Endpoint{Airport: row.FromAirport, City: row.FromCity},
			To:              Endpoint{Airport: row.ToAirport, City: row.ToCity},
			PopularityScore: row.BookingCount,
			AveragePrice:    row.AvgPrice,
		})
	}

	s.cacheSet(ctx, popularRoutesKey, routes)
	return routes, nil
}

// PriceTrends aggregates economy fares per departure date over the
// next 90 days on one route. Both airports are required.
func (s *Service) PriceTrends(
	ctx context.Context,
	fromAirport, toAirport string,
) (*Trends, error) {
	if fromAirport == "" || toAirport == "" {
		return nil, fmt.Errorf(
			"%w: from_airport and to_airport are required for price trends",
			domain.ErrInvalidRequest)
	}

	key := trendsKeyPrefix + fromAirport + ":" + toAirport
	var cached Trends
	if s.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	rows, err := s.flights.PriceTrends(ctx, fromAirport, toAirport)
	if err != nil {
		return nil, fmt.Errorf("price trends: %w", err)
	}

	trends := &Trends{}
	trends.Route.From = fromAirport
	trends.Route.To = toAirport
	trends.PriceData = make([]PricePoint, 0, len(rows))
	for _, row := range rows {
		trends.PriceData = append(trends.PriceData, PricePoint{
			Date:         row.Date,
			AveragePrice: row.AvgPrice,
			MinPrice:     row.MinPrice,
			MaxPrice:     row.MaxPrice,
			FlightCount:  row.FlightCount,
		})
	}

	s.cacheSet(ctx, key, trends)
	return trends, nil
}

func mapFlight(row *dto.FlightRead) Result {
	return Result{
		FlightID: row.ID,
		Airline: Airline{
			Name:               row.AirlineName,
			BaggageAllowance:   row.BaggageAllowance,
			CancellationPolicy: row.CancellationPolicy,
		},
		FlightNumber: row.FlightNumber,
		Aircraft:     row.Aircraft,
		Departure: Endpoint{
			Airport: row.FromAirport,
			City:    row.FromCity,
			Time:    row.DepartureTime.Format(time.RFC3339),
		},
		Arrival: Endpoint{
			Airport: row.ToAirport,
			City:    row.ToCity,
			Time:    row.ArrivalTime.Format(time.RFC3339),
		},
		Duration: formatDuration(row.DurationMinutes),
		Stops:    row.Stops,
		Pricing: Pricing{
			Economy:        row.PriceEconomy,
			Premium:        row.PricePremium,
			Business:       row.PriceBusiness,
			EconomyWithTax: flightdomain.PriceWithTax(row.PriceEconomy),
		},
		AvailableSeats: row.AvailableSeats,
		TotalSeats:     row.TotalSeats,
		BookingClass:   flightdomain.ClassifyAvailability(row.AvailableSeats, row.TotalSeats),
	}
}

func formatDuration(minutes int) string {
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}

// searchKey hashes the canonicalized filter so equivalent searches
// share a cache entry.
func searchKey(filter dto.FlightSearchFilter) string {
	canonical := fmt.Sprintf("%s|%s|%s|%d|%.2f|%t|%s|%s",
		filter.FromAirport, filter.ToAirport, filter.DepartureDate,
		filter.Passengers, filter.MaxPrice, filter.DirectOnly,
		filter.Airline, filter.TimePreference)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

func (s *Service) cacheGet(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Cache read failed, falling back to database",
			"key", key, "error", err)
		return false
	}
	if data == nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("Cache entry undecodable, falling back to database",
			"key", key, "error", err)
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Cache marshal failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("Cache write failed", "key", key, "error", err)
	}
}
