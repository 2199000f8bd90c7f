// Package validation holds the request schemas for signup, signin and post
// mutations. Each Parse* function decodes an untyped JSON payload and checks it
// against the schema; it has no side effects.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SignupInput is the payload of POST /user/signup.
type SignupInput struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName,omitempty"`
	Password  string `json:"password" validate:"required,min=8"`
}

// SigninInput is the payload of POST /user/signin.
type SigninInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// CreatePostInput is the payload of POST /post.
type CreatePostInput struct {
	Title   string
	Content string
}

// EditPostInput is the payload of PUT /post.
type EditPostInput struct {
	ID      string
	Title   string
	Content string
}

// Post fields must be present but may be empty strings, so the wire forms
// decode into pointers and "required" only rejects absent keys or null.
type createPostPayload struct {
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

type editPostPayload struct {
	ID      *string `json:"id" validate:"required"`
	Title   *string `json:"title" validate:"required"`
	Content *string `json:"content" validate:"required"`
}

// SchemaError reports a payload that does not match its schema. Fields maps the
// JSON field name to a human readable reason; it is empty when the payload was
// not a decodable JSON object.
type SchemaError struct {
	Schema string
	Fields map[string]string
	cause  error
}

func (e *SchemaError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid %s schema: %v", e.Schema, e.cause)
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, e.Fields[k])
	}
	return fmt.Sprintf("invalid %s schema: %s", e.Schema, strings.Join(parts, " "))
}

func (e *SchemaError) Unwrap() error { return e.cause }

// Schema names, used in SchemaError and in client facing messages.
const (
	SchemaSignup   = "signup"
	SchemaSignin   = "signin"
	SchemaPost     = "post"
	SchemaEditPost = "edit post"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var messages = map[string]string{
	"required": "The field '%s' is required.",
	"email":    "The field '%s' must be a valid email address.",
	"min":      "The field '%s' must be at least %s characters long.",
}

// ParseSignup decodes and checks a signup payload.
func ParseSignup(data []byte) (SignupInput, error) {
	return parse[SignupInput](SchemaSignup, data)
}

// ParseSignin decodes and checks a signin payload.
func ParseSignin(data []byte) (SigninInput, error) {
	return parse[SigninInput](SchemaSignin, data)
}

// ParseCreatePost decodes a post payload; title and content may be empty.
func ParseCreatePost(data []byte) (CreatePostInput, error) {
	p, err := parse[createPostPayload](SchemaPost, data)
	if err != nil {
		return CreatePostInput{}, err
	}
	return CreatePostInput{Title: *p.Title, Content: *p.Content}, nil
}

// ParseEditPost decodes an edit payload; every field must be present.
func ParseEditPost(data []byte) (EditPostInput, error) {
	p, err := parse[editPostPayload](SchemaEditPost, data)
	if err != nil {
		return EditPostInput{}, err
	}
	return EditPostInput{ID: *p.ID, Title: *p.Title, Content: *p.Content}, nil
}

func parse[T any](schema string, data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, &SchemaError{Schema: schema, cause: err}
	}
	if err := validate.Struct(&out); err != nil {
		var zero T
		return zero, newSchemaError(schema, err)
	}
	return out, nil
}

func newSchemaError(schema string, err error) *SchemaError {
	se := &SchemaError{Schema: schema, Fields: map[string]string{}, cause: err}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return se
	}
	for _, fe := range verrs {
		se.Fields[fe.Field()] = fieldMessage(fe)
	}
	return se
}

func fieldMessage(fe validator.FieldError) string {
	msg, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("Field '%s' is invalid: %s", fe.Field(), fe.Tag())
	}
	if strings.Count(msg, "%s") == 2 {
		return fmt.Sprintf(msg, fe.Field(), fe.Param())
	}
	return fmt.Sprintf(msg, fe.Field())
}
