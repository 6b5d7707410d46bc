package handlers

import (
	"errors"
	"net/http"

	"goblog/helper"
	"goblog/models"
	"goblog/services"

	"github.com/gin-gonic/gin"
)

// commentTimeFormat matches the notification timestamp shown next to a
// freshly posted comment, e.g. "January 02, 2006 at 03:04 PM".
const commentTimeFormat = "January 02, 2006 at 03:04 PM"

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// AddComment posts a comment on a published post. AJAX-signaled
// requests get a JSON verdict; everything else is redirected back to
// the post with a flash notification.
func (h *CommentHandler) AddComment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	postSlug := c.Param("post_slug")
	isAjax := c.GetHeader("X-Requested-With") == "XMLHttpRequest"

	var req models.CommentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	comment, fieldErrs, err := h.commentService.AddComment(postSlug, userID.(uint), req)
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			h.Helper.SendNotFoundError(c, "Post not found", h.Helper.EmptyJsonMap())
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	if fieldErrs != nil {
		if isAjax {
			c.JSON(http.StatusOK, gin.H{"success": false, "errors": fieldErrs})
			return
		}
		helper.SetFlash(c, "There was an error with your comment.")
		c.Redirect(http.StatusFound, "/post/"+postSlug+"/")
		return
	}

	if isAjax {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"comment": models.CommentPayload{
				Author:    comment.Author.Username,
				Content:   comment.Content,
				CreatedAt: comment.CreatedAt.Format(commentTimeFormat),
			},
		})
		return
	}

	helper.SetFlash(c, "Your comment has been added!")
	c.Redirect(http.StatusFound, "/post/"+postSlug+"/")
}
