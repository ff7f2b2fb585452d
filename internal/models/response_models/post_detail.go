package response_models

import (
	"postpulse/internal/models/api_models"
)

// PostDetailResponse bundles everything the detail page needs. Author is nil
// when the upstream lookup comes back absent; Comments is always non-nil.
// The viewer fields are enrichment only and stay zero for anonymous callers.
type PostDetailResponse struct {
	Post            api_models.Post      `json:"post"`
	Author          *api_models.User     `json:"author,omitempty"`
	Comments        []api_models.Comment `json:"comments"`
	IsAuthenticated bool                 `json:"is_authenticated"`
	ViewerEmail     string               `json:"viewer_email,omitempty"`
	Feedback        *FeedbackResponse    `json:"feedback,omitempty"`
}
