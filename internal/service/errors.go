package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserExist           = errors.New("用户已存在")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrChannelNotFound     = errors.New("渠道不存在")
	ErrObjectiveNotFound   = errors.New("营销目标不存在")
	ErrObjectiveExist      = errors.New("营销目标已存在")
	ErrCampaignNotFound    = errors.New("活动不存在")
	ErrCampaignDateInvalid = errors.New("结束日期不能早于开始日期")
	ErrCampaignBudget      = errors.New("预算必须为非负数且最多两位小数")
	ErrPostNotFound        = errors.New("帖子不存在")
	ErrContentTypeInvalid  = errors.New("不支持的内容类型")
	ErrExportUnavailable   = errors.New("报表导出服务不可用")
	ErrSearchUnavailable   = errors.New("搜索服务不可用")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserExist:           BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrChannelNotFound:     NotFound,
	ErrObjectiveNotFound:   NotFound,
	ErrObjectiveExist:      BadRequest,
	ErrCampaignNotFound:    NotFound,
	ErrCampaignDateInvalid: BadRequest,
	ErrCampaignBudget:      BadRequest,
	ErrPostNotFound:        NotFound,
	ErrContentTypeInvalid:  BadRequest,
	ErrExportUnavailable:   InternalServerError,
	ErrSearchUnavailable:   InternalServerError,
	UnauthorizedError:      Forbidden,
	UnExpectedError:        InternalServerError,
}
