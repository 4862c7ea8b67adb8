// Package flash carries one-shot notices between a redirect and the next
// rendered page, the usual post/redirect/get feedback mechanism.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "tarefas_flash"

type Notice struct {
	Category string
	Message  string
}

// Set queues a notice for the next rendered page.
func Set(c *gin.Context, category, message string) {
	value := base64.URLEncoding.EncodeToString([]byte(category + "|" + message))
	c.SetCookie(cookieName, value, 60, "/", "", false, true)
}

// Pop returns the pending notice, if any, and clears it so it shows once.
func Pop(c *gin.Context) *Notice {
	value, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	category, message, ok := strings.Cut(string(decoded), "|")
	if !ok {
		return nil
	}
	return &Notice{Category: category, Message: message}
}

// Redirect sets a notice and redirects in one step.
func Redirect(c *gin.Context, location, category, message string) {
	Set(c, category, message)
	c.Redirect(http.StatusFound, location)
}
