package types

import (
	"fmt"
	"time"
)

// DateLayout là định dạng ngày dùng cho override (ISO 8601)
const DateLayout = "2006-01-02"

// Date là ngày lịch không gắn múi giờ
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate đọc chuỗi YYYY-MM-DD, từ chối ngày không tồn tại (vd 2025-02-30)
func ParseDate(s string) (Date, error) {
	if len(s) != len(DateLayout) {
		return Date{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf lấy ngày lịch của t theo location của chính t
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// DayNumber trả về số ngày kể từ 1970-01-01 (lịch Gregorian).
// Hai ngày liên tiếp luôn lệch nhau đúng 1, không phụ thuộc múi giờ.
func (d Date) DayNumber() int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// DateFromDayNumber là phép ngược của DayNumber
func DateFromDayNumber(n int64) Date {
	z := n + 719468
	era := z / 146097
	if z < 0 && z%146097 != 0 {
		era--
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if m > 12 {
		m -= 12
	}
	if m <= 2 {
		y++
	}
	return Date{Year: int(y), Month: time.Month(m), Day: int(day)}
}

func (d Date) AddDays(n int) Date {
	return DateFromDayNumber(d.DayNumber() + int64(n))
}

func (d Date) Before(o Date) bool {
	return d.DayNumber() < o.DayNumber()
}

// DaysUntil trả về số ngày từ d tới o (âm nếu o đứng trước d)
func (d Date) DaysUntil(o Date) int {
	return int(o.DayNumber() - d.DayNumber())
}

// DayNumber là dạng chuỗi của Date.DayNumber
func DayNumber(s string) (int64, error) {
	d, err := ParseDate(s)
	if err != nil {
		return 0, err
	}
	return d.DayNumber(), nil
}
