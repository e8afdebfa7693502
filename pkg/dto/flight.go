package dto

import "time"

// FlightSearchFilter carries the optional flight search criteria.
// Empty or zero fields are not applied; all set filters compose with
// AND.
type FlightSearchFilter struct {
	FromAirport    string
	ToAirport      string
	DepartureDate  string
	Passengers     int
	MaxPrice       float64
	DirectOnly     bool
	Airline        string
	TimePreference string
}

// FlightRead is one row of the flight search read model, joined with
// its airline and airport data.
type FlightRead struct {
	ID                 int64
	FlightNumber       string
	AirlineName        string
	BaggageAllowance   string
	CancellationPolicy string
	Aircraft           string
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

// PopularRouteRead is one aggregate row of the popular-routes query:
// a route ranked by confirmed bookings over the last 30 days.
type PopularRouteRead struct {
	FromAirport  string
	FromCity     string
	ToAirport    string
	ToCity       string
	BookingCount int
	AvgPrice     float64
}

// PriceTrendRead is one per-date aggregate of economy fares on a route.
type PriceTrendRead struct {
	Date        string
	AvgPrice    float64
	MinPrice    float64
	MaxPrice    float64
	FlightCount int
}
