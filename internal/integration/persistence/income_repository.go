// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kakeibo/backend/internal/application/adapter"
	"github.com/kakeibo/backend/internal/domain/entity"
	domainerror "github.com/kakeibo/backend/internal/domain/error"
	"github.com/kakeibo/backend/internal/integration/persistence/model"
)

// incomeRepository implements the adapter.IncomeRepository interface.
type incomeRepository struct {
	db *gorm.DB
}

// NewIncomeRepository creates a new income repository instance.
func NewIncomeRepository(db *gorm.DB) adapter.IncomeRepository {
	return &incomeRepository{
		db: db,
	}
}

// Upsert inserts or replaces the income profile for the profile's user.
// The user_id unique index makes this a single-row replace.
func (r *incomeRepository) Upsert(ctx context.Context, profile *entity.IncomeProfile) error {
	profileModel := model.IncomeProfileFromEntity(profile)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(profileModel)
	if result.Error != nil {
		return domainerror.NewStoreError("upsert income profile", result.Error)
	}
	return nil
}

// FindByUserID retrieves the active income profile for a user.
func (r *incomeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.IncomeProfile, error) {
	var profileModel model.IncomeProfileModel
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profileModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income profile not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, domainerror.NewStoreError("find income profile", result.Error)
	}
	return profileModel.ToEntity(), nil
}
