package builders

import (
	"ratecard/models"
)

// OverrideBuilder giúp tạo DateOverride theo từng bước
type OverrideBuilder struct {
	override *models.DateOverride
}

// NewOverrideBuilder tạo instance mới của OverrideBuilder
func NewOverrideBuilder(propertyID uint) *OverrideBuilder {
	return &OverrideBuilder{
		override: &models.DateOverride{PropertyID: propertyID},
	}
}

func (b *OverrideBuilder) WithID(id uint) *OverrideBuilder {
	b.override.ID = id
	return b
}

// OnDate đặt ngày (YYYY-MM-DD)
func (b *OverrideBuilder) OnDate(date string) *OverrideBuilder {
	b.override.Date = date
	return b
}

// WithPrice đặt giá, bỏ trạng thái chặn
func (b *OverrideBuilder) WithPrice(price int64) *OverrideBuilder {
	b.override.IsBlocked = false
	b.override.Price = &price
	return b
}

// Blocked chặn ngày, giá không còn ý nghĩa nên bị xóa
func (b *OverrideBuilder) Blocked() *OverrideBuilder {
	b.override.IsBlocked = true
	b.override.Price = nil
	return b
}

func (b *OverrideBuilder) WithNote(note string) *OverrideBuilder {
	b.override.Note = &note
	return b
}

// Build trả về bản sao của override, builder có thể dùng tiếp cho ngày khác
func (b *OverrideBuilder) Build() models.DateOverride {
	o := *b.override
	if o.Price != nil {
		price := *o.Price
		o.Price = &price
	}
	if o.Note != nil {
		note := *o.Note
		o.Note = &note
	}
	return o
}
