package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"postpulse/internal/models/api_models"
)

const defaultBaseURL = "https://jsonplaceholder.typicode.com"

// PlaceholderClientInterface reads posts, users and comments from the
// upstream content API. Every operation returns either the decoded value or
// nil: transport errors, non-2xx statuses and decode failures all collapse to
// the same absent result, so callers cannot tell "not found" from "upstream
// down". Failure detail is logged here and nowhere else.
type PlaceholderClientInterface interface {
	GetPosts(ctx context.Context) []api_models.Post
	GetPost(ctx context.Context, id int) *api_models.Post
	GetCommentsForPost(ctx context.Context, postID int) []api_models.Comment
	GetUser(ctx context.Context, id int) *api_models.User
	PostExists(ctx context.Context, id int) bool
}

type PlaceholderClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewPlaceholderClient() *PlaceholderClient {
	baseURL := os.Getenv("JSONPLACEHOLDER_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &PlaceholderClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// NewPlaceholderClientWithBaseURL is used by tests to point at a local server.
func NewPlaceholderClientWithBaseURL(baseURL string) *PlaceholderClient {
	return &PlaceholderClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

func (p *PlaceholderClient) GetPosts(ctx context.Context) []api_models.Post {
	var posts []api_models.Post
	if !p.get(ctx, "/posts", &posts) {
		return nil
	}
	return posts
}

func (p *PlaceholderClient) GetPost(ctx context.Context, id int) *api_models.Post {
	var post api_models.Post
	if !p.get(ctx, fmt.Sprintf("/posts/%d", id), &post) {
		return nil
	}
	return &post
}

func (p *PlaceholderClient) GetCommentsForPost(ctx context.Context, postID int) []api_models.Comment {
	var comments []api_models.Comment
	if !p.get(ctx, fmt.Sprintf("/posts/%d/comments", postID), &comments) {
		return nil
	}
	return comments
}

func (p *PlaceholderClient) GetUser(ctx context.Context, id int) *api_models.User {
	var user api_models.User
	if !p.get(ctx, fmt.Sprintf("/users/%d", id), &user) {
		return nil
	}
	return &user
}

// PostExists is derived: the upstream has no head/exists endpoint.
func (p *PlaceholderClient) PostExists(ctx context.Context, id int) bool {
	return p.GetPost(ctx, id) != nil
}

func (p *PlaceholderClient) get(ctx context.Context, path string, out interface{}) bool {
	url := p.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Printf("placeholder: building request for %s: %v", url, err)
		return false
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		log.Printf("placeholder: GET %s: %v", url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("placeholder: GET %s: status %d", url, resp.StatusCode)
		return false
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Printf("placeholder: decoding %s: %v", url, err)
		return false
	}

	return true
}
