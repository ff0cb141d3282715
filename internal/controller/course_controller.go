package controller

import (
	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	ContentService *service.ContentService
}

func NewCourseController(contentService *service.ContentService) *CourseController {
	return &CourseController{ContentService: contentService}
}

// @Summary 获取课程列表
// @Description 返回全部课程
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.ContentService.ListCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary 获取课程详情
// @Description 按 ID 返回课程
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.ContentService.GetCourse(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary 获取课程章节
// @Description 按阅读顺序返回课程全部章节
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/chapters [get]
func (c *CourseController) Chapters(ctx *gin.Context) {
	chapters, err := c.ContentService.ListChapters(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

// @Summary 获取课程测验
// @Description 返回课程下的全部测验
// @Tags 课程
// @Produce json
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Router /api/courses/{id}/quizzes [get]
func (c *CourseController) Quizzes(ctx *gin.Context) {
	quizzes, err := c.ContentService.ListQuizzesByCourse(ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}
