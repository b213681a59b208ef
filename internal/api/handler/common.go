package handler

import (
	"CampaignLens/internal/pkg/consts"
	"CampaignLens/internal/pkg/util"
	"CampaignLens/internal/service"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bind 绑定请求并执行 validate 标签校验，解析失败统一视为参数错误
func bind(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		return fmt.Errorf("%w: %w", service.ErrParamInvalid, err)
	}
	return util.ValidateDTO(obj)
}

func bindQuery(c *gin.Context, obj any) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		return fmt.Errorf("%w: %w", service.ErrParamInvalid, err)
	}
	return nil
}

// pathID 读取路径中的数字 ID
func pathID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrParamInvalid
	}
	return id, nil
}

func currentUserID(c *gin.Context) uint64 {
	return c.GetUint64(consts.ContextUserID)
}
