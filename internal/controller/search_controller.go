package controller

import (
	"strings"

	"course_companion_backend/internal/service"
	"course_companion_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	SearchService *service.SearchService
}

func NewSearchController(searchService *service.SearchService) *SearchController {
	return &SearchController{SearchService: searchService}
}

func (c *SearchController) query(ctx *gin.Context) (string, int, bool) {
	query := strings.TrimSpace(ctx.Query("q"))
	if query == "" {
		util.BadRequest(ctx, "Query parameter 'q' is required")
		return "", 0, false
	}
	limit := util.ParseLimit(ctx.Query("limit"), service.DefaultSearchLimit)
	return query, limit, true
}

// @Summary 全局搜索
// @Description 在课程与章节中做子串匹配，按相关度降序
// @Tags 搜索
// @Produce json
// @Param q query string true "搜索词"
// @Param limit query int false "返回条数上限" default(10)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/search [get]
func (c *SearchController) Search(ctx *gin.Context) {
	query, limit, ok := c.query(ctx)
	if !ok {
		return
	}

	results, err := c.SearchService.Search(query, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"query": query, "results": results, "total": len(results)})
}

// @Summary 搜索课程
// @Description 仅在课程标题与描述中匹配
// @Tags 搜索
// @Produce json
// @Param q query string true "搜索词"
// @Param limit query int false "返回条数上限" default(10)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/search/courses [get]
func (c *SearchController) SearchCourses(ctx *gin.Context) {
	query, limit, ok := c.query(ctx)
	if !ok {
		return
	}

	results, err := c.SearchService.SearchCourses(query, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"query": query, "results": results, "total": len(results)})
}

// @Summary 搜索章节
// @Description 仅在章节标题与正文中匹配
// @Tags 搜索
// @Produce json
// @Param q query string true "搜索词"
// @Param limit query int false "返回条数上限" default(10)
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/search/chapters [get]
func (c *SearchController) SearchChapters(ctx *gin.Context) {
	query, limit, ok := c.query(ctx)
	if !ok {
		return
	}

	results, err := c.SearchService.SearchChapters(query, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"query": query, "results": results, "total": len(results)})
}
