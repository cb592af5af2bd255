package overrides

import (
	"fmt"
	"sort"

	"ratecard/dto"
	"ratecard/models"
	"ratecard/types"
)

// rangeKeyPrefix là tiền tố của OverrideRange.Key
const rangeKeyPrefix = "override-"

// compareKey là các thuộc tính đã chuẩn hóa để so sánh khi gộp
type compareKey struct {
	isBlocked bool
	price     int64
	note      string
}

func keyOf(o models.DateOverride) compareKey {
	return compareKey{
		isBlocked: o.IsBlocked,
		price:     o.NormalizedPrice(),
		note:      o.NormalizedNote(),
	}
}

// MatchAttributes cho biết hai override có cùng chặn, giá (nil = 0) và ghi chú (nil = "")
func MatchAttributes(a, b models.DateOverride) bool {
	return keyOf(a) == keyOf(b)
}

// SortOverrides trả về bản sao đã sắp xếp theo ngày, trùng ngày thì theo id
func SortOverrides(overrides []models.DateOverride) []models.DateOverride {
	sorted := make([]models.DateOverride, len(overrides))
	copy(sorted, overrides)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].ID < sorted[j].ID
	})
	return sorted
}

// Coalesce gộp các override liền ngày và cùng thuộc tính thành các range hiển thị.
// Không sửa input. Ngày sai định dạng không bao giờ được gộp với ngày bên cạnh.
func Coalesce(overrides []models.DateOverride) []dto.OverrideRange {
	ranges := make([]dto.OverrideRange, 0, len(overrides))
	if len(overrides) == 0 {
		return ranges
	}

	var (
		lastKey   compareKey
		lastDay   int64
		lastValid bool
	)
	for _, o := range SortOverrides(overrides) {
		day, err := types.DayNumber(o.Date)
		valid := err == nil
		key := keyOf(o)

		if n := len(ranges); n > 0 && valid && lastValid && key == lastKey && day == lastDay+1 {
			last := &ranges[n-1]
			last.EndDate = o.Date
			last.IDs = append(last.IDs, o.ID)
		} else {
			ranges = append(ranges, newRange(o))
			lastKey = key
		}
		lastDay = day
		lastValid = valid
	}
	return ranges
}

func newRange(o models.DateOverride) dto.OverrideRange {
	r := dto.OverrideRange{
		Key:       fmt.Sprintf("%s%d", rangeKeyPrefix, o.ID),
		StartDate: o.Date,
		IDs:       []uint{o.ID},
		IsBlocked: o.IsBlocked,
	}
	if o.Price != nil {
		price := *o.Price
		r.Price = &price
	}
	if o.Note != nil {
		note := *o.Note
		r.Note = &note
	}
	return r
}

// RangeIDs trả về toàn bộ id trong các range theo thứ tự
func RangeIDs(ranges []dto.OverrideRange) []uint {
	var ids []uint
	for _, r := range ranges {
		ids = append(ids, r.IDs...)
	}
	return ids
}
