package controller

import (
	"strings"

	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AccessController struct {
	AccessService *service.AccessService
}

func NewAccessController(accessService *service.AccessService) *AccessController {
	return &AccessController{AccessService: accessService}
}

// @Summary 检查高级功能访问权限
// @Description 按订阅状态判断用户能否使用高级功能，免费用户附带升级提示
// @Tags 订阅
// @Produce json
// @Param user_id query string true "用户ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/access/check [get]
func (c *AccessController) Check(ctx *gin.Context) {
	userID := strings.TrimSpace(ctx.Query("user_id"))
	if userID == "" {
		util.BadRequest(ctx, "Query parameter 'user_id' is required")
		return
	}

	status, err := c.AccessService.CheckAccess(userID)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, status)
}

// @Summary 获取订阅价格表
// @Description 返回全部订阅档位及对应功能
// @Tags 订阅
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/pricing [get]
func (c *AccessController) Pricing(ctx *gin.Context) {
	util.Success(ctx, c.AccessService.Pricing())
}
