package repositories

import (
	"context"
	"errors"
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"postpulse/internal/models/db_models"
	"postpulse/pkg/utils"
)

type FeedbackRepositoryInterface interface {
	// CreateFeedback runs the check-then-insert as one transaction and
	// returns utils.ErrDuplicateFeedback when a row for the same
	// (user_id, post_id) already exists, whether found by the check or
	// surfaced as a unique-violation from a concurrent insert.
	CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error
	FindByUserAndPost(ctx context.Context, userID string, postID int) (*db_models.Feedback, error)
	ListFeedback(ctx context.Context) ([]db_models.Feedback, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing db_models.Feedback
		err := tx.
			Where("user_id = ? AND post_id = ?", feedback.UserID, feedback.PostID).
			First(&existing).Error
		if err == nil {
			return utils.ErrDuplicateFeedback
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(feedback).Error
	})

	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrDuplicateFeedback) || isUniqueViolation(err) {
		// Loser of a concurrent race lands here via the unique index;
		// it gets the same outcome as a sequential re-vote.
		return utils.ErrDuplicateFeedback
	}
	return err
}

func (r *FeedbackRepository) FindByUserAndPost(ctx context.Context, userID string, postID int) (*db_models.Feedback, error) {
	var rows []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	if len(rows) > 1 {
		// The unique index should make this impossible.
		log.Printf("feedback: %d rows for user %s post %d, taking the first", len(rows), userID, postID)
	}
	return &rows[0], nil
}

func (r *FeedbackRepository) ListFeedback(ctx context.Context) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}
	return false
}
