package response_models

import "time"

type FeedbackResponse struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	PostID    int       `json:"post_id"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}
