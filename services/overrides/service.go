package overrides

import (
	"context"

	"ratecard/builders"
	"ratecard/dto"
	"ratecard/errors"
	"ratecard/models"
	"ratecard/services/logger"
	"ratecard/services/notification"
	"ratecard/types"
	"ratecard/validator"
)

const (
	ActionSet     = "set"
	ActionDeleted = "deleted"
)

// Service xử lý nghiệp vụ override giá/chặn ngày của property
type Service struct {
	store    Store
	cache    Cache
	logger   logger.Logger
	notifier notification.Service
}

type ServiceOptions struct {
	Store    Store
	Cache    Cache
	Logger   logger.Logger
	Notifier notification.Service
}

func NewService(opts ServiceOptions) *Service {
	s := &Service{
		store:    opts.Store,
		cache:    opts.Cache,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
	if s.cache == nil {
		s.cache = NopCache{}
	}
	if s.logger == nil {
		s.logger = logger.NopLogger{}
	}
	if s.notifier == nil {
		s.notifier = notification.NopService{}
	}
	return s
}

// ListOverrides trả về các override gốc của property theo thứ tự ngày
func (s *Service) ListOverrides(ctx context.Context, propertyID uint) ([]dto.OverrideResponse, error) {
	if _, err := s.store.GetProperty(ctx, propertyID); err != nil {
		return nil, err
	}
	overrides, err := s.store.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	res := make([]dto.OverrideResponse, 0, len(overrides))
	for _, o := range SortOverrides(overrides) {
		res = append(res, dto.OverrideResponse{
			ID:         o.ID,
			PropertyID: o.PropertyID,
			Date:       o.Date,
			IsBlocked:  o.IsBlocked,
			Price:      o.Price,
			Note:       o.Note,
		})
	}
	return res, nil
}

// ListRanges trả về các range đã gộp kèm nhãn hiển thị
func (s *Service) ListRanges(ctx context.Context, propertyID uint) ([]dto.OverrideRangeResponse, error) {
	property, err := s.store.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.store.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	ranges := s.coalesceCached(ctx, propertyID, s.usableOverrides(propertyID, overrides))

	res := make([]dto.OverrideRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		res = append(res, dto.OverrideRangeResponse{
			OverrideRange: r,
			Label:         RangeLabel(r),
			PriceLabel:    PriceLabel(r, property.Currency),
		})
	}
	return res, nil
}

func (s *Service) coalesceCached(ctx context.Context, propertyID uint, overrides []models.DateOverride) []dto.OverrideRange {
	key := ContentKey(propertyID, overrides)

	cached, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("Không đọc được cache %s: %v", key, err)
	} else if found {
		s.logger.Debug("Cache hit %s", key)
		return cached
	}

	ranges := Coalesce(overrides)
	if err := s.cache.Set(ctx, propertyID, key, ranges); err != nil {
		s.logger.Warn("Không lưu được cache %s: %v", key, err)
	}
	return ranges
}

// usableOverrides bỏ các bản ghi sai ngày; nếu trùng ngày thì giữ bản ghi có id lớn hơn
func (s *Service) usableOverrides(propertyID uint, overrides []models.DateOverride) []models.DateOverride {
	if err := validator.ValidateOverrides(overrides); err == nil {
		return overrides
	}

	usable := make([]models.DateOverride, 0, len(overrides))
	byDate := make(map[string]int, len(overrides))
	for _, o := range SortOverrides(overrides) {
		if err := validator.ValidateOverride(&o); err != nil {
			s.logger.Warn("Bỏ qua override của property %d: %v", propertyID, err)
			continue
		}
		if idx, ok := byDate[o.Date]; ok {
			s.logger.Warn("Property %d có override trùng ngày %s (id %d, %d), giữ id %d",
				propertyID, o.Date, usable[idx].ID, o.ID, o.ID)
			usable[idx] = o
			continue
		}
		byDate[o.Date] = len(usable)
		usable = append(usable, o)
	}
	return usable
}

// ExpandSpan tạo một override cho mỗi ngày trong [FromDate, ToDate]
func ExpandSpan(propertyID uint, req dto.SetOverridesRequest) ([]models.DateOverride, error) {
	fromDate, err := types.ParseDate(req.FromDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày bắt đầu không hợp lệ", err)
	}
	toDate, err := types.ParseDate(req.ToDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "Định dạng ngày kết thúc không hợp lệ", err)
	}

	b := builders.NewOverrideBuilder(propertyID)
	if req.IsBlocked {
		b.Blocked()
	} else if req.Price != nil {
		b.WithPrice(*req.Price)
	}
	if req.Note != nil {
		b.WithNote(*req.Note)
	}

	days := fromDate.DaysUntil(toDate) + 1
	if days <= 0 {
		return []models.DateOverride{}, nil
	}
	overrides := make([]models.DateOverride, 0, days)
	for d := fromDate; !toDate.Before(d); d = d.AddDays(1) {
		overrides = append(overrides, b.OnDate(d.String()).Build())
	}
	return overrides, nil
}

// SetOverrides đặt giá/chặn cho mọi ngày trong khoảng, ghi đè override cũ cùng ngày
func (s *Service) SetOverrides(ctx context.Context, propertyID uint, req dto.SetOverridesRequest) (*dto.SetOverridesResponse, error) {
	if err := validator.ValidateSetOverrides(&req); err != nil {
		return nil, err
	}
	if _, err := s.store.GetProperty(ctx, propertyID); err != nil {
		return nil, err
	}

	overrides, err := ExpandSpan(propertyID, req)
	if err != nil {
		return nil, err
	}
	saved, err := s.store.Upsert(ctx, overrides)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Đã đặt %d override cho property %d (%s -> %s)", len(saved), propertyID, req.FromDate, req.ToDate)

	ids := make([]uint, 0, len(saved))
	for _, o := range saved {
		ids = append(ids, o.ID)
	}
	s.afterWrite(ctx, propertyID, ActionSet, ids)

	ranges, err := s.ListRanges(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return &dto.SetOverridesResponse{Affected: len(saved), Ranges: ranges}, nil
}

// DeleteRange xóa mọi override có id nằm trong ids của range
func (s *Service) DeleteRange(ctx context.Context, propertyID uint, ids []uint) (int64, error) {
	if err := validator.ValidateIDs(ids); err != nil {
		return 0, err
	}
	if _, err := s.store.GetProperty(ctx, propertyID); err != nil {
		return 0, err
	}

	affected, err := s.store.DeleteByIDs(ctx, propertyID, ids)
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, errors.NewAppError(errors.ErrCodeDBNotFound, "Không tìm thấy override cần xóa", nil)
	}
	s.logger.Info("Đã xóa %d override của property %d", affected, propertyID)

	s.afterWrite(ctx, propertyID, ActionDeleted, ids)
	return affected, nil
}

// PurgeBefore xóa các override đã qua ngày before
func (s *Service) PurgeBefore(ctx context.Context, before types.Date) (int64, error) {
	affected, err := s.store.DeleteBefore(ctx, before.String())
	if err != nil {
		return 0, err
	}
	s.logger.Info("Đã dọn %d override trước ngày %s", affected, before)
	return affected, nil
}

func (s *Service) afterWrite(ctx context.Context, propertyID uint, action string, ids []uint) {
	if err := s.cache.Invalidate(ctx, propertyID); err != nil {
		s.logger.Warn("Không xóa được cache của property %d: %v", propertyID, err)
	}
	msg := notification.NewMessageBuilder(propertyID, action).WithIDs(ids).Build()
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Warn("Không gửi được thông báo cho property %d: %v", propertyID, err)
	}
}
