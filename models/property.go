package models

import (
	"fmt"
	"time"
)

type Property struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name"`
	BasePrice int64          `json:"basePrice"` // Giá mặc định mỗi đêm (cent)
	Currency  string         `json:"currency" gorm:"default:'USD'"`
	Status    int            `json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Overrides []DateOverride `json:"overrides,omitempty" gorm:"foreignKey:PropertyID"`
}

func (p *Property) ValidateStatus() error {
	if p.Status < 0 || p.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", p.Status)
	}
	return nil
}
