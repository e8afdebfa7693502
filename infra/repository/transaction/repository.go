// Package transaction is the gorm-backed implementation of the payment
// transaction store.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/vuelasur/booking/infra/repository"
	"github.com/vuelasur/booking/pkg/domain"
	"github.com/vuelasur/booking/pkg/dto"
	repo "github.com/vuelasur/booking/pkg/repository/transaction"
	"gorm.io/gorm"
)

type gormRepository struct {
	db *gorm.DB
}

// New creates a transaction repository backed by the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &gormRepository{db: db}
}

var _ repo.Repository = (*gormRepository)(nil)

// Insert implements transaction.Repository.
func (r *gormRepository) Insert(
	ctx context.Context,
	create dto.TransactionCreate,
) error {
	m := mapCreateDTOToModel(create)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		err = repository.MapGormErrorToDomain(err)
		if errors.Is(err, domain.ErrDuplicateOrderRef) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateOrderRef, create.OrderRef)
		}
		return err
	}
	return nil
}

// UpdateByOrderRef implements transaction.Repository. The column set is
// fixed; values bind as parameters only.
func (r *gormRepository) UpdateByOrderRef(
	ctx context.Context,
	orderRef string,
	update dto.TransactionConfirmUpdate,
) error {
	result := r.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("order_ref = ?", orderRef).
		Updates(map[string]any{
			"status":             update.Status,
			"authorization_code": update.AuthorizationCode,
			"response_code":      update.ResponseCode,
			"transaction_date":   update.TransactionDate,
			"accounting_date":    update.AccountingDate,
			"card_number":        update.CardNumber,
			"installments":       update.Installments,
			"payment_type":       update.PaymentType,
			"confirmed_at":       update.ConfirmedAt,
		})
	if result.Error != nil {
		return repository.MapGormErrorToDomain(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: transaction %s", domain.ErrNotFound, orderRef)
	}
	return nil
}

// GetByOrderRef implements transaction.Repository.
func (r *gormRepository) GetByOrderRef(
	ctx context.Context,
	orderRef string,
) (*dto.TransactionRead, error) {
	var m Transaction
	err := r.db.WithContext(ctx).
		Where("order_ref = ?", orderRef).
		First(&m).Error
	if err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return mapModelToReadDTO(&m), nil
}

// --- Mappers ---

func mapCreateDTOToModel(create dto.TransactionCreate) Transaction {
	return Transaction{
		ID:             create.ID,
		OrderRef:       create.OrderRef,
		Token:          create.Token,
		SessionID:      create.SessionID,
		BaseAmount:     create.BaseAmount,
		TaxAmount:      create.TaxAmount,
		TotalAmount:    create.TotalAmount,
		Currency:       create.Currency,
		FlightRef:      create.FlightRef,
		UserRef:        create.UserRef,
		PassengerCount: create.PassengerCount,
		Status:         create.Status,
		PaymentMethod:  create.PaymentMethod,
	}
}

func mapModelToReadDTO(m *Transaction) *dto.TransactionRead {
	return &dto.TransactionRead{
		ID:                m.ID,
		OrderRef:          m.OrderRef,
		Token:             m.Token,
		SessionID:         m.SessionID,
		BaseAmount:        m.BaseAmount,
		TaxAmount:         m.TaxAmount,
		TotalAmount:       m.TotalAmount,
		Currency:          m.Currency,
		FlightRef:         m.FlightRef,
		UserRef:           m.UserRef,
		PassengerCount:    m.PassengerCount,
		Status:            m.Status,
		PaymentMethod:     m.PaymentMethod,
		AuthorizationCode: m.AuthorizationCode,
		ResponseCode:      m.ResponseCode,
		TransactionDate:   m.TransactionDate,
		AccountingDate:    m.AccountingDate,
		CardNumber:        m.CardNumber,
		Installments:      m.Installments,
		PaymentType:       m.PaymentType,
		CreatedAt:         m.CreatedAt,
		ConfirmedAt:       m.ConfirmedAt,
	}
}
