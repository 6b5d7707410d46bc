package handlers

import (
	"net/http"

	"goblog/forms"
	"goblog/helper"
	"goblog/models"
	"goblog/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	profile, posts, err := h.profileService.GetProfile(userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	payload := gin.H{
		"profile":    profile,
		"user_posts": posts,
	}
	if message, ok := helper.GetFlash(c); ok {
		payload["messages"] = []string{message}
	}

	h.Helper.SendSuccess(c, "Profile loaded", payload)
}

func (h *ProfileHandler) ShowEditProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	profile, _, err := h.profileService.GetProfile(userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	h.Helper.SendSuccess(c, "Edit profile", gin.H{"profile": profile})
}

func (h *ProfileHandler) EditProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	errs := forms.ValidateProfile(req)
	if !errs.Valid() {
		h.Helper.SendValidationError(c, errs)
		return
	}

	if _, err := h.profileService.UpdateProfile(userID.(uint), req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	helper.SetFlash(c, "Your profile has been updated!")
	c.Redirect(http.StatusFound, "/profile/")
}
