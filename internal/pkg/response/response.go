package response

import (
	"CampaignLens/internal/api/dto"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/service"
	stdjson "encoding/json"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// 业务码，HTTP 状态码恒为 200
const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

const (
	msgSuccess    = "success"
	msgParamError = "参数错误"
	msgJSONError  = "Json错误"
)

func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{Code: Ok, Message: msgSuccess, Data: data})
}

func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{Code: businessCode, Message: message})
}

// Abort 返回失败并终止后续中间件
func Abort(c *gin.Context, businessCode int, message string) {
	Fail(c, businessCode, message)
	c.Abort()
}

// Error 未识别的错误记日志后统一返回系统异常
func Error(c *gin.Context, err error) {
	code, msg, known := Classify(err)
	if !known {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
	}
	Fail(c, code, msg)
}

// Classify 将错误映射为业务码与提示信息，known 为 false 表示非预期错误
func Classify(err error) (code int, msg string, known bool) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return BadRequest, msgParamError, true
	}

	var dtoErr *util.ValidationError
	if errors.As(err, &dtoErr) {
		return BadRequest, dtoErr.Error(), true
	}

	if isJSONError(err) {
		return BadRequest, msgJSONError, true
	}

	for target, c := range service.ErrorMap {
		if errors.Is(err, target) {
			return c, target.Error(), true
		}
	}
	return InternalServerError, service.UnExpectedError.Error(), false
}

// isJSONError gin 绑定走标准库，业务内部解码走 go-json，两边的错误类型都要识别
func isJSONError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var stdTypeErr *stdjson.UnmarshalTypeError
	var stdSyntaxErr *stdjson.SyntaxError
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr) ||
		errors.As(err, &stdTypeErr) || errors.As(err, &stdSyntaxErr)
}
