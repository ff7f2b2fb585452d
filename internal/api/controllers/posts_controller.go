package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"postpulse/internal/services"
	"postpulse/pkg/utils"
)

type PostsController struct {
	postService services.PostServiceInterface
}

func NewPostsController(postService services.PostServiceInterface) *PostsController {
	return &PostsController{
		postService: postService,
	}
}

// ListPosts godoc
// @Summary List posts
// @Description Get all posts from the upstream content API
// @Tags Posts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /posts [get]
func (p *PostsController) ListPosts(c *gin.Context) {
	posts := p.postService.ListPosts(c.Request.Context())
	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// GetPostDetail godoc
// @Summary Post detail
// @Description Get a post with its author, comments and the viewer's feedback state
// @Tags Posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /posts/{id} [get]
func (p *PostsController) GetPostDetail(c *gin.Context) {
	postID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Post id must be a positive integer")
		return
	}

	viewerID := c.GetString("user_id")

	detail, err := p.postService.GetPostDetail(c.Request.Context(), postID, viewerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Post fetched successfully")
}
