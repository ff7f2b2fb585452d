package db_models

import (
	"time"
)

// Sentiment values accepted for a feedback row.
const (
	SentimentLike    = "like"
	SentimentDislike = "dislike"
)

// Feedback is the only locally owned table. A user may record at most one
// sentiment per post; the composite unique index is the backstop that keeps
// concurrent submissions from both landing. Rows are never updated or
// deleted.
type Feedback struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:450;not null;uniqueIndex:idx_feedback_user_post" json:"user_id"`
	Email     string    `gorm:"size:256;not null" json:"email"`
	PostID    int       `gorm:"not null;uniqueIndex:idx_feedback_user_post" json:"post_id"`
	Sentiment string    `gorm:"size:10;not null" json:"sentiment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
