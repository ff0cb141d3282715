package controller

import (
	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"
	"course_companion_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	ContentService *service.ContentService
	QuizService    *service.QuizService
}

func NewQuizController(contentService *service.ContentService, quizService *service.QuizService) *QuizController {
	return &QuizController{ContentService: contentService, QuizService: quizService}
}

// @Summary 获取测验详情
// @Description 按 ID 返回测验及题目
// @Tags 测验
// @Produce json
// @Param id path string true "测验ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	quiz, err := c.ContentService.GetQuiz(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// @Summary 提交测验答案
// @Description 判分、记录答题历史并更新学习进度
// @Tags 测验
// @Accept json
// @Produce json
// @Param submission body service.QuizSubmission true "答题内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/quizzes/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	var sub service.QuizSubmission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, "Invalid submission payload")
		return
	}

	result, err := c.QuizService.Submit(ctx.Request.Context(), sub)
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}

	outcome := "failed"
	if result.Passed {
		outcome = "passed"
	}
	monitoring.QuizSubmissions.WithLabelValues(outcome).Inc()

	util.Success(ctx, result)
}

// @Summary 获取答题历史
// @Description 返回某用户某测验的全部答题记录，新在前
// @Tags 测验
// @Produce json
// @Param userId path string true "用户ID"
// @Param quizId path string true "测验ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/attempts/{userId}/{quizId} [get]
func (c *QuizController) Attempts(ctx *gin.Context) {
	attempts, err := c.QuizService.Attempts(ctx.Param("userId"), ctx.Param("quizId"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}
