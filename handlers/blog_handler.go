package handlers

import (
	"errors"
	"net/http"

	"goblog/helper"
	"goblog/models"
	"goblog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BlogHandler struct {
	blogService services.BlogService
	Helper      *helper.HTTPHelper
}

func NewBlogHandler(blogService services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) Home(c *gin.Context) {
	page, err := h.blogService.GetHomePage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{
		"featured_posts": page.FeaturedPosts,
		"recent_posts":   page.RecentPosts,
		"categories":     page.Categories,
	}
	if message, ok := helper.GetFlash(c); ok {
		payload["messages"] = []string{message}
	}

	c.JSON(http.StatusOK, payload)
}

func (h *BlogHandler) PostList(c *gin.Context) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}

	posts, total, err := h.blogService.GetPostList(params.Page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      posts,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, services.PostsPerPage, params.Page, int(total)),
	})
}

func (h *BlogHandler) PostDetail(c *gin.Context) {
	detail, err := h.blogService.GetPostDetail(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	payload := gin.H{
		"post":          detail.Post,
		"comments":      detail.Comments,
		"related_posts": detail.RelatedPosts,
	}
	if message, ok := helper.GetFlash(c); ok {
		payload["messages"] = []string{message}
	}

	c.JSON(http.StatusOK, payload)
}

func (h *BlogHandler) CategoryDetail(c *gin.Context) {
	var params models.PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}

	category, posts, total, err := h.blogService.GetCategoryPosts(c.Param("slug"), params.Page)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":   category,
		"posts":      posts,
		"pagination": h.Helper.GeneratePaging(c, 0, 0, services.PostsPerPage, params.Page, int(total)),
	})
}

func (h *BlogHandler) Search(c *gin.Context) {
	var params models.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if params.Page < 1 {
		params.Page = 1
	}

	posts, total, err := h.blogService.SearchPosts(params.Query, params.Page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":         posts,
		"query":         params.Query,
		"total_results": total,
		"pagination":    h.Helper.GeneratePaging(c, 0, 0, services.PostsPerPage, params.Page, int(total)),
	})
}
