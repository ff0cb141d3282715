package controller

import (
	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 标记章节完成
// @Description 将章节记入用户的课程进度，重复提交幂等
// @Tags 进度
// @Produce json
// @Param userId path string true "用户ID"
// @Param courseId path string true "课程ID"
// @Param chapterId path string true "章节ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{userId}/courses/{courseId}/chapters/{chapterId} [post]
func (c *ProgressController) MarkComplete(ctx *gin.Context) {
	view, err := c.ProgressService.RecordCompletion(
		ctx.Request.Context(),
		ctx.Param("userId"),
		ctx.Param("courseId"),
		ctx.Param("chapterId"),
	)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取课程进度
// @Description 返回用户在某课程的进度，无记录时返回零值
// @Tags 进度
// @Produce json
// @Param userId path string true "用户ID"
// @Param courseId path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/progress/{userId}/courses/{courseId} [get]
func (c *ProgressController) Get(ctx *gin.Context) {
	view, err := c.ProgressService.GetProgress(ctx.Request.Context(), ctx.Param("userId"), ctx.Param("courseId"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

// @Summary 获取用户全部进度
// @Description 返回用户所有课程的进度汇总
// @Tags 进度
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/progress/{userId}/courses [get]
func (c *ProgressController) ListForUser(ctx *gin.Context) {
	summaries, err := c.ProgressService.ListUserProgress(ctx.Request.Context(), ctx.Param("userId"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, summaries)
}

// @Summary 重置连续学习天数
// @Description 将用户所有课程的 streak 清零
// @Tags 进度
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/progress/{userId}/streak/reset [put]
func (c *ProgressController) ResetStreak(ctx *gin.Context) {
	if err := c.ProgressService.ResetStreak(ctx.Param("userId")); err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Streak reset"})
}
