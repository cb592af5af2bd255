package validator

import (
	"fmt"
	"strings"
	"sync"

	playground "github.com/go-playground/validator/v10"

	"ratecard/dto"
	"ratecard/errors"
	"ratecard/models"
	"ratecard/types"
)

// MaxSpanDays là số ngày tối đa cho một lần đặt override
const MaxSpanDays = 366

var (
	validate     *playground.Validate
	validateOnce sync.Once
)

func structValidator() *playground.Validate {
	validateOnce.Do(func() {
		validate = playground.New()
	})
	return validate
}

// ValidateSetOverrides validate yêu cầu đặt override cho một khoảng ngày
func ValidateSetOverrides(req *dto.SetOverridesRequest) error {
	if err := structValidator().Struct(req); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, describe(err), err)
	}

	fromDate, err := types.ParseDate(req.FromDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày bắt đầu không hợp lệ", err)
	}
	toDate, err := types.ParseDate(req.ToDate)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	if toDate.Before(fromDate) {
		return errors.NewAppError(errors.ErrCodeInvalidRange, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}
	if fromDate.DaysUntil(toDate)+1 > MaxSpanDays {
		return errors.NewAppError(errors.ErrCodeInvalidRange, fmt.Sprintf("Không được đặt quá %d ngày một lần", MaxSpanDays), nil)
	}

	if !req.IsBlocked && req.Price == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Giá không được để trống khi ngày không bị chặn", nil)
	}

	return nil
}

// ValidateOverride kiểm tra một override trước khi gộp
func ValidateOverride(o *models.DateOverride) error {
	if _, err := types.ParseDate(o.Date); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidDate, fmt.Sprintf("Ngày không hợp lệ: %q (id %d)", o.Date, o.ID), err)
	}
	if o.Price != nil && *o.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá không được âm", nil)
	}
	return nil
}

// ValidateOverrides kiểm tra từng override và đảm bảo không có hai override trùng ngày
func ValidateOverrides(overrides []models.DateOverride) error {
	seen := make(map[string]uint, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		if err := ValidateOverride(o); err != nil {
			return err
		}
		if prev, ok := seen[o.Date]; ok {
			return errors.NewAppError(errors.ErrCodeDuplicateDate, fmt.Sprintf("Ngày %s bị trùng (id %d và %d)", o.Date, prev, o.ID), nil)
		}
		seen[o.Date] = o.ID
	}
	return nil
}

// ValidateIDs kiểm tra danh sách id khi xóa range
func ValidateIDs(ids []uint) error {
	if len(ids) == 0 {
		return errors.NewAppError(errors.ErrCodeEmptyIDs, "Không có ID nào được cung cấp", nil)
	}
	for _, id := range ids {
		if id == 0 {
			return errors.NewAppError(errors.ErrCodeValidation, "ID không hợp lệ", nil)
		}
	}
	return nil
}

func describe(err error) string {
	verrs, ok := err.(playground.ValidationErrors)
	if !ok {
		return "Dữ liệu không hợp lệ"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return "Dữ liệu không hợp lệ (" + strings.Join(msgs, ", ") + ")"
}
