package controllers

import (
	"context"
	"strconv"

	"ratecard/dto"
	"ratecard/errors"
	"ratecard/response"

	"github.com/gin-gonic/gin"
)

// OverrideService là các nghiệp vụ override mà controller cần
type OverrideService interface {
	ListOverrides(ctx context.Context, propertyID uint) ([]dto.OverrideResponse, error)
	ListRanges(ctx context.Context, propertyID uint) ([]dto.OverrideRangeResponse, error)
	SetOverrides(ctx context.Context, propertyID uint, req dto.SetOverridesRequest) (*dto.SetOverridesResponse, error)
	DeleteRange(ctx context.Context, propertyID uint, ids []uint) (int64, error)
}

type OverrideController struct {
	Service OverrideService
}

func NewOverrideController(service OverrideService) OverrideController {
	return OverrideController{Service: service}
}

func propertyIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID property không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

// GetOverrides godoc
// @Summary  Danh sách override theo ngày của property
// @Tags     overrides
// @Produce  json
// @Param    id  path  int  true  "Property ID"
// @Success  200  {object}  response.ResponseTotal
// @Router   /properties/{id}/overrides [get]
func (o OverrideController) GetOverrides(c *gin.Context) {
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	overrides, err := o.Service.ListOverrides(c.Request.Context(), propertyID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithTotal(c, overrides, len(overrides))
}

// GetOverrideRanges godoc
// @Summary  Các khoảng override đã gộp để hiển thị trên lịch
// @Tags     overrides
// @Produce  json
// @Param    id  path  int  true  "Property ID"
// @Success  200  {object}  response.ResponseTotal
// @Router   /properties/{id}/overrides/ranges [get]
func (o OverrideController) GetOverrideRanges(c *gin.Context) {
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	ranges, err := o.Service.ListRanges(c.Request.Context(), propertyID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.SuccessWithTotal(c, ranges, len(ranges))
}

// SetOverrides godoc
// @Summary  Đặt giá hoặc chặn các ngày trong khoảng [fromDate, toDate]
// @Tags     overrides
// @Accept   json
// @Produce  json
// @Param    id    path  int                      true  "Property ID"
// @Param    body  body  dto.SetOverridesRequest  true  "Override"
// @Success  200  {object}  response.Response
// @Security BearerAuth
// @Router   /properties/{id}/overrides [post]
func (o OverrideController) SetOverrides(c *gin.Context) {
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var request dto.SetOverridesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	res, err := o.Service.SetOverrides(c.Request.Context(), propertyID, request)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, res)
}

// DeleteOverrideRange godoc
// @Summary  Xóa một khoảng override theo danh sách ids
// @Tags     overrides
// @Accept   json
// @Produce  json
// @Param    id    path  int                         true  "Property ID"
// @Param    body  body  dto.DeleteOverridesRequest  true  "IDs"
// @Success  200  {object}  response.Response
// @Security BearerAuth
// @Router   /properties/{id}/overrides [delete]
func (o OverrideController) DeleteOverrideRange(c *gin.Context) {
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	var request dto.DeleteOverridesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.FromError(c, errors.NewAppError(errors.ErrCodeEmptyIDs, "Không có ID nào được cung cấp", err))
		return
	}

	deleted, err := o.Service.DeleteRange(c.Request.Context(), propertyID, request.IDs)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, gin.H{"deleted": deleted})
}
