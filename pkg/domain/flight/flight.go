// Package flight holds the read-side domain model for flight search:
// availability classification and display pricing.
package flight

// BookingClass describes how much of a flight's capacity is left.
type BookingClass string

const (
	ClassSoldOut   BookingClass = "sold_out"
	ClassLimited   BookingClass = "limited"
	ClassModerate  BookingClass = "moderate"
	ClassAvailable BookingClass = "available"
)

// ClassifyAvailability derives the booking class from seat counts:
// no seats is sold out, up to 10% of capacity is limited, up to 30%
// is moderate, anything above is available.
func ClassifyAvailability(availableSeats, totalSeats int) BookingClass {
	switch {
	case availableSeats == 0:
		return ClassSoldOut
	case float64(availableSeats) <= float64(totalSeats)*0.1:
		return ClassLimited
	case float64(availableSeats) <= float64(totalSeats)*0.3:
		return ClassModerate
	default:
		return ClassAvailable
	}
}

// ivaFactor is the Chilean IVA applied to displayed fares.
const ivaFactor = 1.19

// PriceWithTax returns the IVA-inclusive display price for a fare.
// Search results quote fares as decimal values, unlike the integer
// amounts charged by the payment pipeline.
func PriceWithTax(price float64) float64 {
	return price * ivaFactor
}

// TimePreference buckets departures by hour of day.
type TimePreference string

const (
	TimeMorning   TimePreference = "morning"
	TimeAfternoon TimePreference = "afternoon"
	TimeEvening   TimePreference = "evening"
)
