package overrides

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ratecard/dto"
	"ratecard/types"
)

const blockedLabel = "Blocked"

// OrdinalSuffix trả về hậu tố tiếng Anh cho ngày trong tháng (11, 12, 13 luôn là "th")
func OrdinalSuffix(day int) string {
	switch day % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

// FormatLongDate hiển thị "February, 14th 2025". Chuỗi sai định dạng được trả lại nguyên vẹn.
func FormatLongDate(date string) string {
	d, err := types.ParseDate(date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s, %d%s %d", d.Month, d.Day, OrdinalSuffix(d.Day), d.Year)
}

// RangeLabel hiển thị khoảng ngày của range, vd "February, 14th 2025 to February, 18th 2025"
func RangeLabel(r dto.OverrideRange) string {
	if r.EndDate == "" {
		return FormatLongDate(r.StartDate)
	}
	return FormatLongDate(r.StartDate) + " to " + FormatLongDate(r.EndDate)
}

// PriceLabel hiển thị giá của range, giá lưu theo đơn vị nhỏ nhất của currency
func PriceLabel(r dto.OverrideRange, currencyCode string) string {
	if r.IsBlocked {
		return blockedLabel
	}
	var minor int64
	if r.Price != nil {
		minor = *r.Price
	}
	return FormatMinorUnits(minor, currencyCode)
}

// FormatMinorUnits định dạng số tiền lưu theo đơn vị nhỏ nhất của currency,
// vd 125000 USD -> "$1,250.00", 1500000 VND -> "₫1,500,000"
func FormatMinorUnits(minor int64, currencyCode string) string {
	unit := currency.USD
	if u, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(currencyCode))); err == nil {
		unit = u
	}
	scale, _ := currency.Standard.Rounding(unit)

	sign := ""
	magnitude := uint64(minor)
	if minor < 0 {
		sign = "-"
		magnitude = uint64(-(minor + 1)) + 1
	}

	divisor := uint64(1)
	for i := 0; i < scale; i++ {
		divisor *= 10
	}

	p := message.NewPrinter(language.English)
	amount := p.Sprintf("%d", magnitude/divisor)
	if scale > 0 {
		amount += fmt.Sprintf(".%0*d", scale, magnitude%divisor)
	}

	symbol := p.Sprint(currency.Symbol(unit))
	if symbol == unit.String() {
		return sign + symbol + " " + amount
	}
	return sign + symbol + amount
}
