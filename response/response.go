package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ratecard/errors"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code      int         `json:"code"`
	Mess      string      `json:"mess"`
	ErrorCode string      `json:"errorCode,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

type ResponseTotal struct {
	Code  int         `json:"code"`
	Mess  string      `json:"mess"`
	Data  interface{} `json:"data"`
	Total int         `json:"total"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

func SuccessWithTotal(c *gin.Context, data interface{}, total int) {
	c.JSON(http.StatusOK, ResponseTotal{
		Code:  1,
		Mess:  "Thành công",
		Total: total,
		Data:  data,
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Lỗi server",
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Chưa xác thực",
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Không có quyền truy cập",
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Không tìm thấy",
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}

// StatusFor ánh xạ mã lỗi AppError sang HTTP status
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeUnauthorized, errors.ErrCodeInvalidToken, errors.ErrCodeMissingToken:
		return http.StatusUnauthorized
	case errors.ErrCodeForbidden:
		return http.StatusForbidden
	case errors.ErrCodeDBNotFound, errors.ErrCodePropertyNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDBDuplicate, errors.ErrCodeDuplicateDate:
		return http.StatusConflict
	case errors.ErrCodeValidation, errors.ErrCodeRequiredField, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidAmount, errors.ErrCodeInvalidDate, errors.ErrCodeInvalidRange, errors.ErrCodeEmptyIDs:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FromError trả về response theo AppError; lỗi khác là lỗi server
func FromError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	status := StatusFor(appErr.Code)
	mess := appErr.Message
	if status == http.StatusInternalServerError {
		mess = "Lỗi server"
	}
	c.JSON(status, Response{
		Code:      0,
		Mess:      mess,
		ErrorCode: string(appErr.Code),
	})
}
