package services

import (
	"context"
	"sync"

	"postpulse/internal/models/api_models"
	"postpulse/internal/models/db_models"
	"postpulse/pkg/utils"
)

type mockContentAPI struct {
	getPostsFn    func() []api_models.Post
	getPostFn     func(id int) *api_models.Post
	getCommentsFn func(postID int) []api_models.Comment
	getUserFn     func(id int) *api_models.User

	postCalls    int
	userCalls    int
	commentCalls int
}

func (m *mockContentAPI) GetPosts(ctx context.Context) []api_models.Post {
	return m.getPostsFn()
}

func (m *mockContentAPI) GetPost(ctx context.Context, id int) *api_models.Post {
	m.postCalls++
	return m.getPostFn(id)
}

func (m *mockContentAPI) GetCommentsForPost(ctx context.Context, postID int) []api_models.Comment {
	m.commentCalls++
	return m.getCommentsFn(postID)
}

func (m *mockContentAPI) GetUser(ctx context.Context, id int) *api_models.User {
	m.userCalls++
	return m.getUserFn(id)
}

func (m *mockContentAPI) PostExists(ctx context.Context, id int) bool {
	m.postCalls++
	return m.getPostFn(id) != nil
}

type mockAccountRepo struct {
	findByIdFn    func(id string) (*db_models.Account, error)
	findByEmailFn func(email string) (*db_models.Account, error)
	insertFn      func(account *db_models.Account) error

	findByIdCalls int
}

func (m *mockAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	return m.insertFn(account)
}

func (m *mockAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	m.findByIdCalls++
	return m.findByIdFn(id)
}

func (m *mockAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.findByEmailFn(email)
}

type mockFeedbackRepo struct {
	createFn func(feedback *db_models.Feedback) error
	findFn   func(userID string, postID int) (*db_models.Feedback, error)
	listFn   func() ([]db_models.Feedback, error)

	createCalls     int
	findByPairCalls int
}

func (m *mockFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	m.createCalls++
	return m.createFn(feedback)
}

func (m *mockFeedbackRepo) FindByUserAndPost(ctx context.Context, userID string, postID int) (*db_models.Feedback, error) {
	m.findByPairCalls++
	return m.findFn(userID, postID)
}

func (m *mockFeedbackRepo) ListFeedback(ctx context.Context) ([]db_models.Feedback, error) {
	return m.listFn()
}

// memFeedbackRepo mimics the real repository against a table with the
// composite unique index: first insert per (user, post) wins, the rest get
// the duplicate outcome. Safe for concurrent use.
type memFeedbackRepo struct {
	mu     sync.Mutex
	nextID uint
	rows   []db_models.Feedback
}

func (m *memFeedbackRepo) CreateFeedback(ctx context.Context, feedback *db_models.Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if row.UserID == feedback.UserID && row.PostID == feedback.PostID {
			return utils.ErrDuplicateFeedback
		}
	}

	m.nextID++
	feedback.ID = m.nextID
	m.rows = append(m.rows, *feedback)
	return nil
}

func (m *memFeedbackRepo) FindByUserAndPost(ctx context.Context, userID string, postID int) (*db_models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, row := range m.rows {
		if row.UserID == userID && row.PostID == postID {
			found := row
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memFeedbackRepo) ListFeedback(ctx context.Context) ([]db_models.Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]db_models.Feedback, len(m.rows))
	copy(out, m.rows)
	// created_at DESC; ids are assigned in insert order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
