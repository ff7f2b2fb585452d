package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newFixtureServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/posts", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"userId":7,"title":"first","body":"hello"},{"id":2,"userId":7,"title":"second","body":"world"}]`))
	})
	mux.HandleFunc("/posts/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1,"userId":7,"title":"first","body":"hello"}`))
	})
	mux.HandleFunc("/posts/1/comments", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":11,"postId":1,"name":"c","email":"c@example.com","body":"nice"}]`))
	})
	mux.HandleFunc("/posts/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	})
	mux.HandleFunc("/posts/99999", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/users/7", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":7,"name":"Ana","username":"ana","email":"ana@example.com"}`))
	})
	mux.HandleFunc("/users/8", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestGetPost(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	defer ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	post := client.GetPost(context.Background(), 1)
	assert.NotNil(post)
	assert.Equal(1, post.ID)
	assert.Equal(7, post.UserID)
	assert.Equal("first", post.Title)
}

func TestGetPosts(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	defer ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	posts := client.GetPosts(context.Background())
	assert.Len(posts, 2)
	assert.Equal("second", posts[1].Title)
}

func TestGetCommentsForPost(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	defer ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	comments := client.GetCommentsForPost(context.Background(), 1)
	assert.Len(comments, 1)
	assert.Equal("c@example.com", comments[0].Email)
}

func TestGetUser(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	defer ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	user := client.GetUser(context.Background(), 7)
	assert.NotNil(user)
	assert.Equal("Ana", user.Name)
}

// Not-found, server errors and malformed bodies all collapse to the same
// absent result.
func TestFailuresReadAsAbsent(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	defer ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	ctx := context.Background()

	assert.Nil(client.GetPost(ctx, 99999), "404 should read as absent")
	assert.Nil(client.GetPost(ctx, 2), "bad JSON should read as absent")
	assert.Nil(client.GetUser(ctx, 8), "500 should read as absent")
	assert.Nil(client.GetCommentsForPost(ctx, 3), "unknown route should read as absent")
}

func TestUnreachableUpstreamReadsAsAbsent(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	assert.Nil(client.GetPost(context.Background(), 1))
	assert.Nil(client.GetPosts(context.Background()))
}

func TestPostExists(t *testing.T) {
	assert := assert.New(t)
	ts := newFixtureServer()
	defer ts.Close()

	client := NewPlaceholderClientWithBaseURL(ts.URL)
	assert.True(client.PostExists(context.Background(), 1))
	assert.False(client.PostExists(context.Background(), 99999))
}
