package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/chefmaster/backend/internal/service"
)

type FeedbackHandler struct {
	feedback service.IFeedbackService
}

func NewFeedbackHandler(feedback service.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/feedback", h.CreateFeedback)
	router.GET("/recipes/:id/feedback", h.GetFeedbackSummary)
}

// CreateFeedback records a rating for a generated recipe
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fb, err := h.feedback.Record(c.Request.Context(), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		respondError(c, err, "Failed to record feedback")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": fb})
}

func (h *FeedbackHandler) GetFeedbackSummary(c *gin.Context) {
	summary, err := h.feedback.Summary(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
