package handlers

import (
	"errors"
	"net/http"

	"blogserver/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errCreatePost = "failed to create blog post"
	errListPosts  = "failed to get blog posts"
	errGetPost    = "failed to get blog post"
	errUpdatePost = "failed to update blog post"
	errDeletePost = "failed to delete blog post"
	errAddComment = "failed to add comment"

	msgPostNotFound = "blog post not found"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// Request DTO shared by create and update.
type postRequest struct {
	BlogTitle   string `json:"blogtitle" binding:"required"`
	BlogContent string `json:"blogcontent" binding:"required"`
}

type commentRequest struct {
	Text string `json:"text" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Create blog post
// @Tags         blogposts
// @Accept       json
// @Produce      json
// @Param        body  body  postRequest  true  "Title and content"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogposts [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	var input postRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id, err := h.services.Blog.Create(c.Request.Context(), callerID(c), input.BlogTitle, input.BlogContent)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreatePost, "post_create_failed", err)
		return
	}

	h.feed.publish(feedEvent{Type: "post_created", PostID: id})
	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "blog post created successfully"})
}

// @Summary      List blog posts
// @Description  Public. Author is expanded to {id, username} on every post.
// @Tags         blogposts
// @Produce      json
// @Success      200  {array}   service.PostView
// @Failure      500  {object}  map[string]string
// @Router       /blogposts [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Blog.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPosts, "post_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Get blog post by id
// @Tags         blogposts
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  service.PostView
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogposts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id := c.Param("id")
	post, err := h.services.Blog.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": msgPostNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errGetPost, "post_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, post)
}

// @Summary      Update blog post
// @Description  Overwrites title and content. Only the author may update.
// @Tags         blogposts
// @Accept       json
// @Produce      json
// @Param        id    path  string       true  "Post id"
// @Param        body  body  postRequest  true  "New title and content"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogposts/{id} [put]
// @Security     BearerAuth
func (h *Handler) updatePost(c *gin.Context) {
	var input postRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id := c.Param("id")
	err := h.services.Blog.Update(c.Request.Context(), callerID(c), id, input.BlogTitle, input.BlogContent)
	switch {
	case err == nil:
		h.feed.publish(feedEvent{Type: "post_updated", PostID: id})
		c.JSON(http.StatusOK, gin.H{"message": "blog post updated successfully"})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgPostNotFound})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to update this blog post"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdatePost, "post_update_failed", err, "id", id)
	}
}

// @Summary      Delete blog post
// @Description  Only the author may delete. Comments are removed with the post.
// @Tags         blogposts
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogposts/{id} [delete]
// @Security     BearerAuth
func (h *Handler) deletePost(c *gin.Context) {
	id := c.Param("id")
	err := h.services.Blog.Delete(c.Request.Context(), callerID(c), id)
	switch {
	case err == nil:
		h.feed.publish(feedEvent{Type: "post_deleted", PostID: id})
		c.JSON(http.StatusOK, gin.H{"message": "blog post deleted successfully"})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgPostNotFound})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not allowed to delete this blog post"})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errDeletePost, "post_delete_failed", err, "id", id)
	}
}

// @Summary      Add comment
// @Description  Appends {text, author} to the post's comment list. Any authenticated user may comment.
// @Tags         blogposts
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "Post id"
// @Param        body  body  commentRequest  true  "Comment text"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /blogposts/{id}/comments [post]
// @Security     BearerAuth
func (h *Handler) addComment(c *gin.Context) {
	var input commentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	id := c.Param("id")
	err := h.services.Blog.AddComment(c.Request.Context(), callerID(c), id, input.Text)
	switch {
	case err == nil:
		h.feed.publish(feedEvent{Type: "comment_added", PostID: id})
		c.JSON(http.StatusCreated, gin.H{"message": "comment added successfully"})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgPostNotFound})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errAddComment, "comment_add_failed", err, "id", id)
	}
}
