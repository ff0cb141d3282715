package controller

import (
	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HybridController struct {
	HybridService *service.HybridService
}

func NewHybridController(hybridService *service.HybridService) *HybridController {
	return &HybridController{HybridService: hybridService}
}

// @Summary 自适应学习路径
// @Description 根据测验表现与学习时长推荐下一章节
// @Tags 智能辅导
// @Accept json
// @Produce json
// @Param request body service.AdaptiveLearningRequest true "学习信号"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/hybrid/adaptive-learning [post]
func (c *HybridController) AdaptiveLearning(ctx *gin.Context) {
	var req service.AdaptiveLearningRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request payload")
		return
	}

	result, err := c.HybridService.AdaptiveLearning(ctx.Request.Context(), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 主观题智能评阅
// @Description 对自由作答给出评分与文字反馈
// @Tags 智能辅导
// @Accept json
// @Produce json
// @Param request body service.AssessmentRequest true "作答内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/hybrid/llm-assessment [post]
func (c *HybridController) Assessment(ctx *gin.Context) {
	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request payload")
		return
	}

	result, err := c.HybridService.AssessmentFeedback(ctx.Request.Context(), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 跨章节知识串联
// @Description 汇总多个章节的概念并给出关联与应用建议
// @Tags 智能辅导
// @Accept json
// @Produce json
// @Param request body service.SynthesisRequest true "章节集合"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/hybrid/synthesis [post]
func (c *HybridController) Synthesis(ctx *gin.Context) {
	var req service.SynthesisRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request payload")
		return
	}

	result, err := c.HybridService.Synthesis(ctx.Request.Context(), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 导师答疑会话
// @Description 针对单个问题生成导师式回复与教学要点
// @Tags 智能辅导
// @Accept json
// @Produce json
// @Param request body service.MentorSessionRequest true "问题与上下文"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/hybrid/mentor-session [post]
func (c *HybridController) MentorSession(ctx *gin.Context) {
	var req service.MentorSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Invalid request payload")
		return
	}

	result, err := c.HybridService.MentorSession(ctx.Request.Context(), req)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 查询本月智能功能用量
// @Description 返回用户当月各项智能功能的调用次数
// @Tags 智能辅导
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/hybrid/usage/{userId} [get]
func (c *HybridController) Usage(ctx *gin.Context) {
	usage, err := c.HybridService.GetUsage(ctx.Param("userId"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, usage)
}
