package infra

import (
	bookingrepo "github.com/vuelasur/booking/infra/repository/booking"
	flightrepo "github.com/vuelasur/booking/infra/repository/flight"
	transactionrepo "github.com/vuelasur/booking/infra/repository/transaction"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date for every model the service
// touches, including the flight read-model tables it only queries.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&transactionrepo.Transaction{},
		&bookingrepo.Booking{},
		&flightrepo.Airline{},
		&flightrepo.Airport{},
		&flightrepo.Flight{},
		&flightrepo.FlightPrice{},
	)
}
