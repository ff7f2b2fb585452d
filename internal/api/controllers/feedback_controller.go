package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"postpulse/internal/models/request_models"
	"postpulse/internal/services"
	"postpulse/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit feedback
// @Description Record a like or dislike for a post; one per user per post
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.SubmitFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	viewerID := c.GetString("user_id")

	err := f.feedbackService.SubmitFeedback(c.Request.Context(), viewerID, req.PostID, req.Sentiment)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Thanks for your feedback")
}

// ListFeedback godoc
// @Summary List feedback
// @Description All recorded feedback, most recent first
// @Tags Feedback
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	feedbacks, err := f.feedbackService.ListFeedback(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
