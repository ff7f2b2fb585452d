package request_models

type SubmitFeedbackRequest struct {
	PostID    int    `json:"post_id" binding:"required"`
	Sentiment string `json:"sentiment" binding:"required"`
}
