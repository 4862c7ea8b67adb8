package handlers

import (
	"net/http"

	"github.com/math490/ProjetoTarefas-3B/internal/flash"

	"github.com/gin-gonic/gin"
)

// Index renders the landing page. No auth required.
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Notice": flash.Pop(c),
	})
}
