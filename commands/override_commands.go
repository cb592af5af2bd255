package commands

import (
	"context"

	"ratecard/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OverrideCommand định nghĩa interface cho các command ghi override
type OverrideCommand interface {
	Execute(ctx context.Context) error
}

// UpsertOverridesCommand tạo mới hoặc ghi đè override theo (property_id, date)
type UpsertOverridesCommand struct {
	overrides []models.DateOverride
	db        *gorm.DB
}

func NewUpsertOverridesCommand(overrides []models.DateOverride, db *gorm.DB) *UpsertOverridesCommand {
	return &UpsertOverridesCommand{
		overrides: overrides,
		db:        db,
	}
}

func (c *UpsertOverridesCommand) Execute(ctx context.Context) error {
	if len(c.overrides) == 0 {
		return nil
	}
	return c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "property_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_blocked", "price", "note", "updated_at"}),
	}).Create(&c.overrides).Error
}

// Overrides trả về các bản ghi sau khi ghi (đã có ID)
func (c *UpsertOverridesCommand) Overrides() []models.DateOverride {
	return c.overrides
}

// DeleteOverridesCommand xóa các override theo id trong phạm vi một property
type DeleteOverridesCommand struct {
	propertyID uint
	ids        []uint
	db         *gorm.DB
	affected   int64
}

func NewDeleteOverridesCommand(propertyID uint, ids []uint, db *gorm.DB) *DeleteOverridesCommand {
	return &DeleteOverridesCommand{
		propertyID: propertyID,
		ids:        ids,
		db:         db,
	}
}

func (c *DeleteOverridesCommand) Execute(ctx context.Context) error {
	if len(c.ids) == 0 {
		return nil
	}
	res := c.db.WithContext(ctx).
		Where("property_id = ? AND id IN ?", c.propertyID, c.ids).
		Delete(&models.DateOverride{})
	c.affected = res.RowsAffected
	return res.Error
}

func (c *DeleteOverridesCommand) Affected() int64 {
	return c.affected
}

// PurgeOverridesCommand xóa mọi override có ngày trước before (YYYY-MM-DD)
type PurgeOverridesCommand struct {
	before   string
	db       *gorm.DB
	affected int64
}

func NewPurgeOverridesCommand(before string, db *gorm.DB) *PurgeOverridesCommand {
	return &PurgeOverridesCommand{
		before: before,
		db:     db,
	}
}

func (c *PurgeOverridesCommand) Execute(ctx context.Context) error {
	res := c.db.WithContext(ctx).Where("date < ?", c.before).Delete(&models.DateOverride{})
	c.affected = res.RowsAffected
	return res.Error
}

func (c *PurgeOverridesCommand) Affected() int64 {
	return c.affected
}
