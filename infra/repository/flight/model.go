package flight

import "time"

// Read-model tables for flight search. This service only reads them;
// inventory writes happen elsewhere, but the models are declared here so
// migrations keep the schema in step.

type Airline struct {
	AirlineID          int64  `gorm:"primary_key"`
	AirlineCode        string `gorm:"type:varchar(3);uniqueIndex;not null"`
	AirlineName        string `gorm:"type:varchar(64);not null"`
	BaggageAllowance   string `gorm:"type:varchar(128)"`
	CancellationPolicy string `gorm:"type:varchar(256)"`
}

func (Airline) TableName() string { return "airlines" }

type Airport struct {
	AirportID   int64  `gorm:"primary_key"`
	AirportCode string `gorm:"type:varchar(3);uniqueIndex;not null"`
	CityName    string `gorm:"type:varchar(64);not null"`
}

func (Airport) TableName() string { return "airports" }

type Flight struct {
	FlightID           int64  `gorm:"primary_key"`
	AirlineID          int64  `gorm:"index;not null"`
	FlightNumber       string `gorm:"type:varchar(8);not null"`
	AircraftType       string `gorm:"type:varchar(32)"`
	DepartureAirportID int64  `gorm:"index;not null"`
	ArrivalAirportID   int64  `gorm:"index;not null"`
	DepartureTime      time.Time
	ArrivalTime        time.Time
	FlightDuration     int `gorm:"comment:minutes"`
	Stops              int `gorm:"not null;default:0"`
	AvailableSeats     int `gorm:"not null"`
	TotalSeats         int `gorm:"not null"`
}

func (Flight) TableName() string { return "flights" }

type FlightPrice struct {
	FlightID      int64   `gorm:"primary_key"`
	PriceEconomy  float64 `gorm:"type:decimal(12,2)"`
	PricePremium  float64 `gorm:"type:decimal(12,2)"`
	PriceBusiness float64 `gorm:"type:decimal(12,2)"`
}

func (FlightPrice) TableName() string { return "flight_prices" }
