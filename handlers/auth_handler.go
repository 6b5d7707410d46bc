package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"goblog/config"
	"goblog/forms"
	"goblog/helper"
	"goblog/models"
	"goblog/services"

	"github.com/gin-gonic/gin"
)

const invalidLoginMessage = "Invalid username or password."

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	payload := h.Helper.EmptyJsonMap()
	if message, ok := helper.GetFlash(c); ok {
		payload["messages"] = []string{message}
	}
	h.Helper.SendSuccess(c, "Register", payload)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	errs := forms.ValidateRegister(req)
	if !errs.Valid() {
		h.Helper.SendValidationError(c, errs)
		return
	}

	user, err := h.authService.Register(req)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			errs.Add("username", "A user with that username already exists.")
			h.Helper.SendValidationError(c, errs)
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	helper.SetFlash(c, fmt.Sprintf("Account created for %s!", user.Username))
	c.Redirect(http.StatusFound, "/login/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	payload := h.Helper.EmptyJsonMap()
	if message, ok := helper.GetFlash(c); ok {
		payload["messages"] = []string{message}
	}
	h.Helper.SendSuccess(c, "Login", payload)
}

// Login authenticates and establishes the session. Failure always
// re-renders with the same message, whether the credentials were wrong
// or the form was malformed.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": invalidLoginMessage})
		return
	}

	user, token, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, gin.H{"error": invalidLoginMessage})
			return
		}
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}

	c.SetCookie(config.SessionCookie, token, int(config.JWTExpiration.Seconds()), "/", "", false, true)
	helper.SetFlash(c, fmt.Sprintf("You are now logged in as %s.", user.Username))
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(config.SessionCookie, "", -1, "/", "", false, true)
	helper.SetFlash(c, "You have successfully logged out.")
	c.Redirect(http.StatusFound, "/")
}
