package handlers

import (
	"errors"
	"net/http"

	"serverless_blog/internal/service"
	"serverless_blog/internal/validation"

	"github.com/gin-gonic/gin"
)

// CreatePostRequest documents the create payload.
type CreatePostRequest struct {
	Title   string `json:"title" example:"Hi"`
	Content string `json:"content" example:"World"`
}

// EditPostRequest documents the edit payload.
type EditPostRequest struct {
	ID      string `json:"id" example:"2f1c6a3e-8d0b-4c55-9a57-1c3f2b0d4e11"`
	Title   string `json:"title" example:"Hi2"`
	Content string `json:"content" example:"World"`
}

// @Summary      Create post
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body      CreatePostRequest  true  "Post"
// @Success      200   {object}  map[string]string  "postId"
// @Failure      400   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /post [post]
// @Security     BearerAuth
func (h *Handler) createPost(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": msgUnauthorized})
		return
	}

	raw, err := readBody(c)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaPost, err)
		return
	}
	input, err := validation.ParseCreatePost(raw)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaPost, err)
		return
	}

	id, err := h.services.Posts.Create(c.Request.Context(), userID, input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"postId": id})
	case errors.Is(err, service.ErrUserNotFound):
		// Token is well signed but its user is gone.
		h.logAndJSONError(c, http.StatusForbidden, msgUnauthorized, "post_create_unknown_author", err, "user_id", userID)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomeError, "post_create_failed", err, "user_id", userID)
	}
}

// @Summary      Edit post
// @Description  Replaces title and content of the post with the given id.
// @Tags         post
// @Accept       json
// @Produce      json
// @Param        body  body      EditPostRequest  true  "Post"
// @Success      200   {object}  map[string]string  "postId"
// @Failure      400   {object}  map[string]interface{}
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /post [put]
// @Security     BearerAuth
func (h *Handler) editPost(c *gin.Context) {
	userID, ok := userIDFrom(c)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"message": msgUnauthorized})
		return
	}

	raw, err := readBody(c)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaEditPost, err)
		return
	}
	input, err := validation.ParseEditPost(raw)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaEditPost, err)
		return
	}

	id, err := h.services.Posts.Edit(c.Request.Context(), userID, input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"postId": id})
	case errors.Is(err, service.ErrPostNotFound):
		h.logAndJSONError(c, http.StatusNotFound, msgPostNotFound, "post_edit_missing", err, "post_id", input.ID)
	case errors.Is(err, service.ErrForbidden):
		h.logAndJSONError(c, http.StatusForbidden, msgForbidden, "post_edit_forbidden", err, "post_id", input.ID, "user_id", userID)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomeError, "post_edit_failed", err, "post_id", input.ID)
	}
}

// @Summary      Get post
// @Description  Bodies are kept from the first API version: a miss answers "some error occurred", a failed lookup "post not found".
// @Tags         post
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  map[string]string  "id, title, content"
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /post/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id := c.Param("id")
	p, err := h.services.Posts.Get(c.Request.Context(), id)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"id": p.ID, "title": p.Title, "content": p.Content})
	case errors.Is(err, service.ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgSomeError})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgPostNotFound, "post_get_failed", err, "post_id", id)
	}
}

// @Summary      List posts
// @Description  All posts, oldest first. No pagination.
// @Tags         post
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "allPosts"
// @Failure      500  {object}  map[string]string
// @Router       /post [get]
func (h *Handler) listPosts(c *gin.Context) {
	posts, err := h.services.Posts.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomeError, "post_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"allPosts": posts})
}
