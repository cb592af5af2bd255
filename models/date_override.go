package models

import "time"

// DateOverride là giá/chặn riêng cho một ngày của property
type DateOverride struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PropertyID uint      `json:"propertyId" gorm:"not null;uniqueIndex:idx_override_property_date"`
	Date       string    `json:"date" gorm:"type:char(10);not null;uniqueIndex:idx_override_property_date"` // YYYY-MM-DD
	IsBlocked  bool      `json:"isBlocked" gorm:"default:false"`
	Price      *int64    `json:"price,omitempty"` // Giá theo đơn vị nhỏ nhất (cent), nil khi bị chặn
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DateOverride) TableName() string {
	return "date_overrides"
}

// NormalizedPrice coi giá rỗng là 0
func (o DateOverride) NormalizedPrice() int64 {
	if o.Price == nil {
		return 0
	}
	return *o.Price
}

// NormalizedNote coi ghi chú rỗng là ""
func (o DateOverride) NormalizedNote() string {
	if o.Note == nil {
		return ""
	}
	return *o.Note
}
