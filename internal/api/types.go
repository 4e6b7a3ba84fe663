package api

// CreateFeedbackRequest is the body of POST /recipes/:id/feedback
type CreateFeedbackRequest struct {
	Rating  string `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
