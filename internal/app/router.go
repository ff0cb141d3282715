package app

import (
	"course_companion_backend/docs"
	"course_companion_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.Check)

		// 课程内容
		api.GET("/courses", c.course.List)
		api.GET("/courses/:id", c.course.Get)
		api.GET("/courses/:id/chapters", c.course.Chapters)
		api.GET("/courses/:id/quizzes", c.course.Quizzes)

		// 章节导航
		api.GET("/chapters/:id", c.chapter.Get)
		api.GET("/chapters/:id/next", c.chapter.Next)
		api.GET("/chapters/:id/previous", c.chapter.Previous)

		// 测验
		api.GET("/quizzes/:id", c.quiz.Get)
		api.POST("/quizzes/submit", c.quiz.Submit)
		api.GET("/quizzes/attempts/:userId/:quizId", c.quiz.Attempts)

		// 学习进度
		api.POST("/progress/:userId/courses/:courseId/chapters/:chapterId", c.progress.MarkComplete)
		api.GET("/progress/:userId/courses/:courseId", c.progress.Get)
		api.GET("/progress/:userId/courses", c.progress.ListForUser)
		api.PUT("/progress/:userId/streak/reset", c.progress.ResetStreak)

		// 搜索
		api.GET("/search", c.search.Search)
		api.GET("/search/courses", c.search.SearchCourses)
		api.GET("/search/chapters", c.search.SearchChapters)

		// 智能辅导
		api.POST("/hybrid/adaptive-learning", c.hybrid.AdaptiveLearning)
		api.POST("/hybrid/llm-assessment", c.hybrid.Assessment)
		api.POST("/hybrid/synthesis", c.hybrid.Synthesis)
		api.POST("/hybrid/mentor-session", c.hybrid.MentorSession)
		api.GET("/hybrid/usage/:userId", c.hybrid.Usage)

		// 订阅
		api.GET("/access/check", c.access.Check)
		api.GET("/pricing", c.access.Pricing)
	}
}
