package overrides

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"ratecard/commands"
	"ratecard/errors"
	"ratecard/models"
)

// Store là lớp lưu trữ override của property
type Store interface {
	GetProperty(ctx context.Context, propertyID uint) (*models.Property, error)
	ListByProperty(ctx context.Context, propertyID uint) ([]models.DateOverride, error)
	Upsert(ctx context.Context, overrides []models.DateOverride) ([]models.DateOverride, error)
	DeleteByIDs(ctx context.Context, propertyID uint, ids []uint) (int64, error)
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetProperty(ctx context.Context, propertyID uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.WithContext(ctx).First(&property, propertyID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodePropertyNotFound, "Không tìm thấy property", errors.ErrPropertyNotFound)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy property", err)
	}
	return &property, nil
}

func (s *GormStore) ListByProperty(ctx context.Context, propertyID uint) ([]models.DateOverride, error) {
	var overrides []models.DateOverride
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("date asc, id asc").
		Find(&overrides).Error
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lấy danh sách override", err)
	}
	return overrides, nil
}

func (s *GormStore) Upsert(ctx context.Context, overrides []models.DateOverride) ([]models.DateOverride, error) {
	var cmd *commands.UpsertOverridesCommand
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cmd = commands.NewUpsertOverridesCommand(overrides, tx)
		return cmd.Execute(ctx)
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không thể lưu override", err)
	}
	return cmd.Overrides(), nil
}

func (s *GormStore) DeleteByIDs(ctx context.Context, propertyID uint, ids []uint) (int64, error) {
	cmd := commands.NewDeleteOverridesCommand(propertyID, ids, s.db)
	if err := cmd.Execute(ctx); err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể xóa override", err)
	}
	return cmd.Affected(), nil
}

func (s *GormStore) DeleteBefore(ctx context.Context, date string) (int64, error) {
	cmd := commands.NewPurgeOverridesCommand(date, s.db)
	if err := cmd.Execute(ctx); err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Không thể dọn override cũ", err)
	}
	return cmd.Affected(), nil
}
