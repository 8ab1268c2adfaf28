// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/persistence/model"
)

// savingsRepository implements the adapter.SavingsRepository interface.
//
// The pool and the goals are one consistency domain, so every operation that
// touches both records runs inside a single database transaction with
// conditional updates. Balance checks happen in the UPDATE itself
// (amount >= ?), which keeps concurrent callers from ever observing a pool
// debited without the matching goal credit.
type savingsRepository struct {
	db *gorm.DB
}

// NewSavingsRepository creates a new savings repository instance.
func NewSavingsRepository(db *gorm.DB) adapter.SavingsRepository {
	return &savingsRepository{
		db: db,
	}
}

// GetPool retrieves the savings pool for a user, creating the row with a
// zero balance on first access.
func (r *savingsRepository) GetPool(ctx context.Context, userID uuid.UUID) (*entity.SavingsPool, error) {
	poolModel, err := ensurePool(r.db.WithContext(ctx), userID)
	if err != nil {
		return nil, domainerror.NewStoreError("get savings pool", err)
	}
	return poolModel.ToEntity(), nil
}

// AddToPool atomically increments the pool balance.
func (r *savingsRepository) AddToPool(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.SavingsPool, error) {
	var poolModel model.SavingsPoolModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ensurePool(tx, userID); err != nil {
			return err
		}

		result := tx.Model(&model.SavingsPoolModel{}).
			Where("user_id = ?", userID).
			Updates(map[string]interface{}{
				"amount":     gorm.Expr("amount + ?", amount),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}

		return tx.Where("user_id = ?", userID).First(&poolModel).Error
	})
	if err != nil {
		return nil, domainerror.NewStoreError("add to pool", err)
	}

	return poolModel.ToEntity(), nil
}

// WithdrawFromPool atomically decrements the pool balance, failing with
// insufficient funds when the balance is too low. The balance check is part
// of the UPDATE, so the pool can never go negative.
func (r *savingsRepository) WithdrawFromPool(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*entity.SavingsPool, error) {
	var poolModel model.SavingsPoolModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ensurePool(tx, userID); err != nil {
			return err
		}

		result := tx.Model(&model.SavingsPoolModel{}).
			Where("user_id = ? AND amount >= ?", userID, amount).
			Updates(map[string]interface{}{
				"amount":     gorm.Expr("amount - ?", amount),
				"updated_at": time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.NewSavingsError(
				domainerror.ErrCodeInsufficientFunds,
				"withdrawal exceeds pool balance",
				domainerror.ErrInsufficientFunds,
			)
		}

		return tx.Where("user_id = ?", userID).First(&poolModel).Error
	})
	if err != nil {
		var savingsErr *domainerror.SavingsError
		if errors.As(err, &savingsErr) {
			return nil, err
		}
		return nil, domainerror.NewStoreError("withdraw from pool", err)
	}

	return poolModel.ToEntity(), nil
}

// Transfer moves money between the pool and a goal as one transaction.
// Both sides apply or neither does; a rejected transfer leaves the ledger
// exactly as it was.
func (r *savingsRepository) Transfer(ctx context.Context, params adapter.TransferParams) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if params.IdempotencyKey != nil {
			applied, err := recordReceipt(tx, params)
			if err != nil {
				return err
			}
			if applied {
				// The same transfer already ran; the retry is a no-op success.
				return nil
			}
		}

		var goalModel model.SavingsGoalModel
		result := tx.Where("id = ? AND user_id = ?", params.GoalID, params.UserID).First(&goalModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.NewSavingsError(
					domainerror.ErrCodeGoalNotFound,
					"savings goal not found",
					domainerror.ErrGoalNotFound,
				)
			}
			return result.Error
		}

		if _, err := ensurePool(tx, params.UserID); err != nil {
			return err
		}

		now := time.Now().UTC()

		switch params.Direction {
		case adapter.TransferAllocate:
			if err := debitPool(tx, params.UserID, params.Amount, now); err != nil {
				return err
			}
			return creditGoal(tx, params.GoalID, params.Amount, now)

		case adapter.TransferReturn:
			if err := debitGoal(tx, params.GoalID, params.Amount, now); err != nil {
				return err
			}
			return creditPool(tx, params.UserID, params.Amount, now)

		default:
			return domainerror.NewSavingsError(
				domainerror.ErrCodeInvalidTransferAmount,
				"unknown transfer direction",
				domainerror.NewValidationError("direction", "must be 'allocate' or 'return'"),
			)
		}
	})
	if err != nil {
		var savingsErr *domainerror.SavingsError
		if errors.As(err, &savingsErr) {
			return err
		}
		return domainerror.NewStoreError("transfer", err)
	}
	return nil
}

// CreateGoal creates a new savings goal.
func (r *savingsRepository) CreateGoal(ctx context.Context, goal *entity.SavingsGoal) error {
	goalModel := model.SavingsGoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return domainerror.NewStoreError("create goal", result.Error)
	}
	return nil
}

// FindGoalByID retrieves a goal by its ID.
func (r *savingsRepository) FindGoalByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	var goalModel model.SavingsGoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewSavingsError(
				domainerror.ErrCodeGoalNotFound,
				"savings goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, domainerror.NewStoreError("find goal", result.Error)
	}
	return goalModel.ToEntity(), nil
}

// FindGoalsByUserID retrieves all goals for a given user, newest first.
func (r *savingsRepository) FindGoalsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SavingsGoal, error) {
	var goalModels []model.SavingsGoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, domainerror.NewStoreError("list goals", result.Error)
	}

	goals := make([]*entity.SavingsGoal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// DeleteGoal removes a goal, returning any allocated balance to the pool in
// the same transaction. Money is never destroyed by a deletion.
func (r *savingsRepository) DeleteGoal(ctx context.Context, userID, goalID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var goalModel model.SavingsGoalModel
		result := tx.Where("id = ? AND user_id = ?", goalID, userID).First(&goalModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.NewSavingsError(
					domainerror.ErrCodeGoalNotFound,
					"savings goal not found",
					domainerror.ErrGoalNotFound,
				)
			}
			return result.Error
		}

		if goalModel.CurrentAmount.IsPositive() {
			if _, err := ensurePool(tx, userID); err != nil {
				return err
			}
			if err := creditPool(tx, userID, goalModel.CurrentAmount, time.Now().UTC()); err != nil {
				return err
			}
		}

		return tx.Delete(&model.SavingsGoalModel{}, "id = ?", goalID).Error
	})
	if err != nil {
		var savingsErr *domainerror.SavingsError
		if errors.As(err, &savingsErr) {
			return err
		}
		return domainerror.NewStoreError("delete goal", err)
	}
	return nil
}

// ensurePool loads the pool row for a user, creating it with a zero balance
// when absent.
func ensurePool(tx *gorm.DB, userID uuid.UUID) (*model.SavingsPoolModel, error) {
	poolModel := model.SavingsPoolModel{
		UserID:    userID,
		Amount:    decimal.Zero,
		UpdatedAt: time.Now().UTC(),
	}
	result := tx.Where("user_id = ?", userID).FirstOrCreate(&poolModel)
	if result.Error != nil {
		return nil, result.Error
	}
	return &poolModel, nil
}

// recordReceipt inserts the transfer's idempotency receipt. It reports
// applied=true when a receipt with the same key already exists, meaning the
// transfer ran before and must not run again.
func recordReceipt(tx *gorm.DB, params adapter.TransferParams) (applied bool, err error) {
	receipt := model.TransferReceiptModel{
		ID:        *params.IdempotencyKey,
		UserID:    params.UserID,
		GoalID:    params.GoalID,
		Amount:    params.Amount,
		Direction: string(params.Direction),
		CreatedAt: time.Now().UTC(),
	}
	result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&receipt)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 0, nil
}

func debitPool(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	result := tx.Model(&model.SavingsPoolModel{}).
		Where("user_id = ? AND amount >= ?", userID, amount).
		Updates(map[string]interface{}{
			"amount":     gorm.Expr("amount - ?", amount),
			"updated_at": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewSavingsError(
			domainerror.ErrCodeInsufficientFunds,
			"allocation exceeds pool balance",
			domainerror.ErrInsufficientFunds,
		)
	}
	return nil
}

func creditPool(tx *gorm.DB, userID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	return tx.Model(&model.SavingsPoolModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"amount":     gorm.Expr("amount + ?", amount),
			"updated_at": now,
		}).Error
}

func debitGoal(tx *gorm.DB, goalID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	result := tx.Model(&model.SavingsGoalModel{}).
		Where("id = ? AND current_amount >= ?", goalID, amount).
		Updates(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount - ?", amount),
			"updated_at":     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.NewSavingsError(
			domainerror.ErrCodeInsufficientFunds,
			"return exceeds goal balance",
			domainerror.ErrInsufficientFunds,
		)
	}
	return nil
}

func creditGoal(tx *gorm.DB, goalID uuid.UUID, amount decimal.Decimal, now time.Time) error {
	return tx.Model(&model.SavingsGoalModel{}).
		Where("id = ?", goalID).
		Updates(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount + ?", amount),
			"updated_at":     now,
		}).Error
}
