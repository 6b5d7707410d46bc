package helper

import "github.com/gin-gonic/gin"

const flashCookie = "flash"

// SetFlash stores a one-shot notification shown on the next page load.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// GetFlash returns and clears the pending notification, if any.
func GetFlash(c *gin.Context) (string, bool) {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return "", false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return message, true
}
