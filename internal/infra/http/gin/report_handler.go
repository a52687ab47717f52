package ginserver

import (
	"context"
	"net/http"
	"net/mail"
	"strings"

	gin "github.com/gin-gonic/gin"

	"github.com/asghar-0017/aparntment-frontend/internal/infra/api"
)

// Reporter forwards visitor issue reports to the upstream API.
type Reporter interface {
	Report(ctx context.Context, req api.ReportRequest) error
}

type ReportHandler struct {
	API Reporter
}

func (h ReportHandler) Create(c *gin.Context) {
	var req api.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and message are required"})
		return
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is not valid"})
		return
	}
	if err := h.API.Report(c.Request.Context(), req); err != nil {
		writeUpstreamError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}
