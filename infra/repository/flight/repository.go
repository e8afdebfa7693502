// Package flight is the gorm-backed implementation of the flight search
// read model. Filters compose from a fixed set of clause strings with
// bound arguments; no SQL is built from caller-controlled keys.
package flight

import (
	"context"
	"strings"
	"time"

	"github.com/vuelasur/booking/pkg/dto"
	repo "github.com/vuelasur/booking/pkg/repository/flight"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates a flight read-model repository backed by the provided
// *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

var _ repo.Repository = (*gormRepository)(nil)

const searchBaseQuery = `
SELECT
    f.flight_id,
    al.airline_name,
    al.baggage_allowance,
    al.cancellation_policy,
    f.flight_number,
    f.aircraft_type,
    dep_airport.airport_code AS from_airport,
    dep_airport.city_name AS from_city,
    arr_airport.airport_code AS to_airport,
    arr_airport.city_name AS to_city,
    f.departure_time,
    f.arrival_time,
    f.flight_duration AS duration_minutes,
    f.stops,
    fp.price_economy,
    fp.price_premium,
    fp.price_business,
    f.available_seats,
    f.total_seats
FROM flights f
JOIN airlines al ON f.airline_id = al.airline_id
JOIN airports dep_airport ON f.departure_airport_id = dep_airport.airport_id
JOIN airports arr_airport ON f.arrival_airport_id = arr_airport.airport_id
JOIN flight_prices fp ON f.flight_id = fp.flight_id
WHERE 1=1`

const searchOrderClause = `
ORDER BY
    fp.price_economy ASC,
    f.departure_time ASC,
    f.stops ASC
LIMIT ?`

// searchRow matches the column aliases of searchBaseQuery.
type searchRow struct {
	FlightID           int64
	AirlineName        string
	BaggageAllowance   string
	CancellationPolicy string
	FlightNumber       string
	AircraftType       string
	FromAirport        string
	FromCity           string
	ToAirport          string
	ToCity             string
	DepartureTime      time.Time
	ArrivalTime        time.Time
	DurationMinutes    int
	Stops              int
	PriceEconomy       float64
	PricePremium       float64
	PriceBusiness      float64
	AvailableSeats     int
	TotalSeats         int
}

// Search implements flight.Repository.
func (r *gormRepository) Search(
	ctx context.Context,
	filter dto.FlightSearchFilter,
	limit int,
) ([]dto.FlightRead, error) {
	var sb strings.Builder
	sb.WriteString(searchBaseQuery)
	args := make([]any, 0, 8)

	if filter.FromAirport != "" {
		sb.WriteString(" AND dep_airport.airport_code = ?")
		args = append(args, filter.FromAirport)
	}
	if filter.ToAirport != "" {
		sb.WriteString(" AND arr_airport.airport_code = ?")
		args = append(args, filter.ToAirport)
	}
	if filter.DepartureDate != "" {
		sb.WriteString(" AND DATE(f.departure_time) = ?")
		args = append(args, filter.DepartureDate)
	}
	if filter.Passengers > 0 {
		sb.WriteString(" AND f.available_seats >= ?")
		args = append(args, filter.Passengers)
	}
	if filter.MaxPrice > 0 {
		sb.WriteString(" AND fp.price_economy <= ?")
		args = append(args, filter.MaxPrice)
	}
	if filter.DirectOnly {
		sb.WriteString(" AND f.stops = 0")
	}
	if filter.Airline != "" {
		sb.WriteString(" AND al.airline_code = ?")
		args = append(args, filter.Airline)
	}
	switch filter.TimePreference {
	case "morning":
		sb.WriteString(" AND EXTRACT(HOUR FROM f.departure_time) BETWEEN 6 AND 12")
	case "afternoon":
		sb.WriteString(" AND EXTRACT(HOUR FROM f.departure_time) BETWEEN 12 AND 18")
	case "evening":
		sb.WriteString(" AND EXTRACT(HOUR FROM f.departure_time) BETWEEN 18 AND 23")
	}

	sb.WriteString(searchOrderClause)
	args = append(args, limit)

	var rows []searchRow
	err := r.db.WithContext(ctx).Raw(sb.String(), args...).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	flights := make([]dto.FlightRead, 0, len(rows))
	for i := range rows {
		flights = append(flights, mapSearchRow(&rows[i]))
	}
	return flights, nil
}

const popularRoutesQuery = `
SELECT
    dep.airport_code AS from_airport,
    dep.city_name AS from_city,
    arr.airport_code AS to_airport,
    arr.city_name AS to_city,
    COUNT(b.id) AS booking_count,
    AVG(fp.price_economy) AS avg_price
FROM bookings b
JOIN flights f ON b.flight_ref = CAST(f.flight_id AS varchar)
JOIN airports dep ON f.departure_airport_id = dep.airport_id
JOIN airports arr ON f.arrival_airport_id = arr.airport_id
JOIN flight_prices fp ON f.flight_id = fp.flight_id
WHERE b.booking_date >= NOW() - INTERVAL '30 days'
    AND b.booking_status != 'cancelled'
GROUP BY dep.airport_code, dep.city_name, arr.airport_code, arr.city_name
ORDER BY booking_count DESC
LIMIT ?`

// PopularRoutes implements flight.Repository.
func (r *gormRepository) PopularRoutes(
	ctx context.Context,
	limit int,
) ([]dto.PopularRouteRead, error) {
	var routes []dto.PopularRouteRead
	err := r.db.WithContext(ctx).Raw(popularRoutesQuery, limit).Scan(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

const priceTrendsQuery = `
SELECT
    TO_CHAR(DATE(f.departure_time), 'YYYY-MM-DD') AS date,
    AVG(fp.price_economy) AS avg_price,
    MIN(fp.price_economy) AS min_price,
    MAX(fp.price_economy) AS max_price,
    COUNT(f.flight_id) AS flight_count
FROM flights f
JOIN airports dep ON f.departure_airport_id = dep.airport_id
JOIN airports arr ON f.arrival_airport_id = arr.airport_id
JOIN flight_prices fp ON f.flight_id = fp.flight_id
WHERE dep.airport_code = ?
    AND arr.airport_code = ?
    AND f.departure_time >= NOW()
    AND f.departure_time <= NOW() + INTERVAL '90 days'
GROUP BY DATE(f.departure_time)
ORDER BY date`

// PriceTrends implements flight.Repository.
func (r *gormRepository) PriceTrends(
	ctx context.Context,
	fromAirport, toAirport string,
) ([]dto.PriceTrendRead, error) {
	var trends []dto.PriceTrendRead
	err := r.db.WithContext(ctx).
		Raw(priceTrendsQuery, fromAirport, toAirport).
		Scan(&trends).Error
	if err != nil {
		return nil, err
	}
	return trends, nil
}

func mapSearchRow(row *searchRow) dto.FlightRead {
	return dto.FlightRead{
		ID:                 row.FlightID,
		FlightNumber:       row.FlightNumber,
		AirlineName:        row.AirlineName,
		BaggageAllowance:   row.BaggageAllowance,
		CancellationPolicy: row.CancellationPolicy,
		Aircraft:           row.AircraftType,
		FromAirport:        row.FromAirport,
		FromCity:           row.FromCity,
		ToAirport:          row.ToAirport,
		ToCity:             row.ToCity,
		DepartureTime:      row.DepartureTime,
		ArrivalTime:        row.ArrivalTime,
		DurationMinutes:    row.DurationMinutes,
		Stops:              row.Stops,
		PriceEconomy:       row.PriceEconomy,
		PricePremium:       row.PricePremium,
		PriceBusiness:      row.PriceBusiness,
		AvailableSeats:     row.AvailableSeats,
		TotalSeats:         row.TotalSeats,
	}
}
