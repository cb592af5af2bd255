package dto

// OverrideRange là nhóm các override liền nhau có cùng giá/chặn/ghi chú.
// Chỉ dùng để hiển thị, không lưu DB.
type OverrideRange struct {
	Key       string  `json:"key"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate,omitempty"` // rỗng khi range chỉ có một ngày
	IDs       []uint  `json:"ids"`
	IsBlocked bool    `json:"isBlocked"`
	Price     *int64  `json:"price,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// CurrentEnd trả về EndDate, hoặc StartDate nếu range chỉ có một ngày
func (r OverrideRange) CurrentEnd() string {
	if r.EndDate != "" {
		return r.EndDate
	}
	return r.StartDate
}

// OverrideRangeResponse là range kèm nhãn hiển thị cho admin panel
type OverrideRangeResponse struct {
	OverrideRange
	Label      string `json:"label"`
	PriceLabel string `json:"priceLabel"`
}

type OverrideResponse struct {
	ID         uint    `json:"id"`
	PropertyID uint    `json:"propertyId"`
	Date       string  `json:"date"`
	IsBlocked  bool    `json:"isBlocked"`
	Price      *int64  `json:"price,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// SetOverridesRequest đặt giá/chặn cho mọi ngày trong [FromDate, ToDate]
type SetOverridesRequest struct {
	FromDate  string  `json:"fromDate" binding:"required" validate:"required,datetime=2006-01-02"`
	ToDate    string  `json:"toDate" binding:"required" validate:"required,datetime=2006-01-02"`
	IsBlocked bool    `json:"isBlocked"`
	Price     *int64  `json:"price" validate:"omitempty,gte=0"`
	Note      *string `json:"note" validate:"omitempty,max=500"`
}

// DeleteOverridesRequest xóa một range theo danh sách ids của nó
type DeleteOverridesRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

type SetOverridesResponse struct {
	Affected int                     `json:"affected"`
	Ranges   []OverrideRangeResponse `json:"ranges"`
}
