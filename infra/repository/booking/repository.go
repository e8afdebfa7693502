// Package booking is the gorm-backed implementation of the booking
// store.
package booking

import (
	"context"

	"github.com/vuelasur/booking/infra/repository"
	"github.com/vuelasur/booking/pkg/dto"
	repo "github.com/vuelasur/booking/pkg/repository/booking"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates a booking repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

var _ repo.Repository = (*gormRepository)(nil)

// Insert implements booking.Repository. ON CONFLICT (transaction_ref)
// DO NOTHING makes a duplicate finalization a no-op; the returned flag
// reports whether a row was actually written.
func (r *gormRepository) Insert(
	ctx context.Context,
	create dto.BookingCreate,
) (bool, error) {
	m := mapCreateDTOToModel(create)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "transaction_ref"}},
			DoNothing: true,
		}).
		Create(&m)
	if result.Error != nil {
		return false, repository.MapGormErrorToDomain(result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetByTransactionRef implements booking.Repository.
func (r *gormRepository) GetByTransactionRef(
	ctx context.Context,
	transactionRef string,
) (*dto.BookingRead, error) {
	var m Booking
	err := r.db.WithContext(ctx).
		Where("transaction_ref = ?", transactionRef).
		First(&m).Error
	if err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return mapModelToReadDTO(&m), nil
}

// --- Mappers ---

func mapCreateDTOToModel(create dto.BookingCreate) Booking {
	return Booking{
		ID:             create.ID,
		BookingRef:     create.BookingRef,
		FlightRef:      create.FlightRef,
		UserRef:        create.UserRef,
		PassengerCount: create.PassengerCount,
		TotalAmount:    create.TotalAmount,
		Currency:       create.Currency,
		PaymentStatus:  create.PaymentStatus,
		BookingStatus:  create.BookingStatus,
		PaymentMethod:  create.PaymentMethod,
		TransactionRef: create.TransactionRef,
		BookingDate:    create.BookingDate,
	}
}

func mapModelToReadDTO(m *Booking) *dto.BookingRead {
	return &dto.BookingRead{
		ID:             m.ID,
		BookingRef:     m.BookingRef,
		FlightRef:      m.FlightRef,
		UserRef:        m.UserRef,
		PassengerCount: m.PassengerCount,
		TotalAmount:    m.TotalAmount,
		Currency:       m.Currency,
		PaymentStatus:  m.PaymentStatus,
		BookingStatus:  m.BookingStatus,
		PaymentMethod:  m.PaymentMethod,
		TransactionRef: m.TransactionRef,
		BookingDate:    m.BookingDate,
		CreatedAt:      m.CreatedAt,
	}
}
