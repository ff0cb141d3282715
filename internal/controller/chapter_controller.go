package controller

import (
	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChapterController struct {
	ContentService *service.ContentService
}

func NewChapterController(contentService *service.ContentService) *ChapterController {
	return &ChapterController{ContentService: contentService}
}

// @Summary 获取章节详情
// @Description 按 ID 返回章节内容
// @Tags 章节
// @Produce json
// @Param id path string true "章节ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/chapters/{id} [get]
func (c *ChapterController) Get(ctx *gin.Context) {
	chapter, err := c.ContentService.GetChapter(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}

// @Summary 获取下一章节
// @Description 沿章节链返回下一章，最后一章返回 404
// @Tags 章节
// @Produce json
// @Param id path string true "章节ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/chapters/{id}/next [get]
func (c *ChapterController) Next(ctx *gin.Context) {
	chapter, err := c.ContentService.NextChapter(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}

// @Summary 获取上一章节
// @Description 沿章节链返回上一章，第一章返回 404
// @Tags 章节
// @Produce json
// @Param id path string true "章节ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/chapters/{id}/previous [get]
func (c *ChapterController) Previous(ctx *gin.Context) {
	chapter, err := c.ContentService.PrevChapter(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		util.HandleServiceError(ctx, err)
		return
	}
	util.Success(ctx, chapter)
}
