package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"serverless_blog/internal/service"
	"serverless_blog/internal/validation"

	"github.com/gin-gonic/gin"
)

// Client facing messages. Bodies match what existing clients already parse.
const (
	msgUserExists         = "user already exists, try signin in"
	msgUserDoesNotExist   = "user does not exist, try signin up first"
	msgInvalidCredentials = "invalid credentials"
	msgSomeError          = "some error occurred"
	msgPostNotFound       = "post not found"
	msgForbidden          = "forbidden"
)

const maxBodyBytes = 1 << 20 // 1 MB

// readBody returns the raw request body, capped at maxBodyBytes.
func readBody(c *gin.Context) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	return io.ReadAll(c.Request.Body)
}

// respondSchemaError writes a 400 for payloads that fail validation or cannot be read.
func (h *Handler) respondSchemaError(c *gin.Context, schema string, err error) {
	if h.log != nil {
		h.log.Infow("bad_request_body", "schema", schema, "err", err)
	}
	body := gin.H{"msg": fmt.Sprintf("invalid %s schema", schema)}
	var se *validation.SchemaError
	if errors.As(err, &se) && len(se.Fields) > 0 {
		body["errors"] = se.Fields
	}
	c.JSON(http.StatusBadRequest, body)
}

// logAndJSONError centralizes error logging and the {"message": ...} response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		if httpCode >= http.StatusInternalServerError {
			h.log.Errorw(logKey, fields...)
		} else {
			h.log.Infow(logKey, fields...)
		}
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// SignupRequest documents the signup payload.
type SignupRequest struct {
	Email     string `json:"email" example:"a@x.com"`
	FirstName string `json:"firstName" example:"Ann"`
	LastName  string `json:"lastName,omitempty" example:"Lee"`
	Password  string `json:"password" example:"password1"`
}

// SigninRequest documents the signin payload.
type SigninRequest struct {
	Email    string `json:"email" example:"a@x.com"`
	Password string `json:"password" example:"password1"`
}

// @Summary      Sign up
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      SignupRequest  true  "Account"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]interface{}
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaSignup, err)
		return
	}
	input, err := validation.ParseSignup(raw)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaSignup, err)
		return
	}

	token, err := h.services.SignUp(c.Request.Context(), input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, service.ErrUserExists):
		h.logAndJSONError(c, http.StatusConflict, msgUserExists, "user_signup_conflict", err, "email", input.Email)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomeError, "user_signup_failed", err, "email", input.Email)
	}
}

// @Summary      Sign in
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        body  body      SigninRequest  true  "Credentials"
// @Success      200   {object}  map[string]string  "token"
// @Failure      400   {object}  map[string]interface{}
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /user/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	raw, err := readBody(c)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaSignin, err)
		return
	}
	input, err := validation.ParseSignin(raw)
	if err != nil {
		h.respondSchemaError(c, validation.SchemaSignin, err)
		return
	}

	token, err := h.services.SignIn(c.Request.Context(), input)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"token": token})
	case errors.Is(err, service.ErrUserNotFound):
		h.logAndJSONError(c, http.StatusNotFound, msgUserDoesNotExist, "user_signin_unknown", err, "email", input.Email)
	case errors.Is(err, service.ErrInvalidCredentials):
		h.logAndJSONError(c, http.StatusUnauthorized, msgInvalidCredentials, "user_signin_rejected", err, "email", input.Email)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, msgSomeError, "user_signin_failed", err, "email", input.Email)
	}
}
