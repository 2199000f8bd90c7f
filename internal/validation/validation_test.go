package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantErr    bool
		wantFields []string
		want       SignupInput
	}{
		{
			name: "valid with last name",
			body: `{"email":"a@x.com","firstName":"Ann","lastName":"Lee","password":"password1"}`,
			want: SignupInput{Email: "a@x.com", FirstName: "Ann", LastName: "Lee", Password: "password1"},
		},
		{
			name: "valid without last name",
			body: `{"email":"a@x.com","firstName":"Ann","password":"password1"}`,
			want: SignupInput{Email: "a@x.com", FirstName: "Ann", Password: "password1"},
		},
		{
			name: "unknown fields are ignored",
			body: `{"email":"a@x.com","firstName":"Ann","password":"password1","role":"admin"}`,
			want: SignupInput{Email: "a@x.com", FirstName: "Ann", Password: "password1"},
		},
		{
			name:       "bad email",
			body:       `{"email":"not-an-email","firstName":"Ann","password":"password1"}`,
			wantErr:    true,
			wantFields: []string{"email"},
		},
		{
			name:       "short password",
			body:       `{"email":"a@x.com","firstName":"Ann","password":"short"}`,
			wantErr:    true,
			wantFields: []string{"password"},
		},
		{
			name:       "missing first name and email",
			body:       `{"password":"password1"}`,
			wantErr:    true,
			wantFields: []string{"email", "firstName"},
		},
		{
			name:    "wrong type",
			body:    `{"email":"a@x.com","firstName":7,"password":"password1"}`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `email=a@x.com`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSignup([]byte(tt.body))
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			require.Error(t, err)
			var se *SchemaError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, SchemaSignup, se.Schema)
			for _, f := range tt.wantFields {
				assert.Contains(t, se.Fields, f)
			}
			assert.Equal(t, SignupInput{}, got)
		})
	}
}

func TestParseSignin(t *testing.T) {
	in, err := ParseSignin([]byte(`{"email":"a@x.com","password":"password1"}`))
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", in.Email)

	_, err = ParseSignin([]byte(`{"email":"a@x.com","password":"1234567"}`))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "The field 'password' must be at least 8 characters long.", se.Fields["password"])
}

func TestParseCreatePost(t *testing.T) {
	in, err := ParseCreatePost([]byte(`{"title":"Hi","content":"World"}`))
	require.NoError(t, err)
	assert.Equal(t, CreatePostInput{Title: "Hi", Content: "World"}, in)

	_, err = ParseCreatePost([]byte(`{"title":"Hi"}`))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "The field 'content' is required.", se.Fields["content"])
}

func TestParseCreatePost_PresenceNotEmptiness(t *testing.T) {
	in, err := ParseCreatePost([]byte(`{"title":"","content":""}`))
	require.NoError(t, err)
	assert.Equal(t, CreatePostInput{}, in)

	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{"empty object", `{}`, []string{"title", "content"}},
		{"null title", `{"title":null,"content":""}`, []string{"title"}},
		{"missing title", `{"content":"World"}`, []string{"title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCreatePost([]byte(tt.body))
			var se *SchemaError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, SchemaPost, se.Schema)
			assert.Len(t, se.Fields, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, se.Fields, f)
			}
		})
	}
}

func TestParseEditPost(t *testing.T) {
	in, err := ParseEditPost([]byte(`{"id":"p-1","title":"Hi2","content":"World"}`))
	require.NoError(t, err)
	assert.Equal(t, EditPostInput{ID: "p-1", Title: "Hi2", Content: "World"}, in)

	in, err = ParseEditPost([]byte(`{"id":"","title":"","content":""}`))
	require.NoError(t, err)
	assert.Equal(t, EditPostInput{}, in)

	_, err = ParseEditPost([]byte(`{"title":"Hi2","content":"World"}`))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Fields, "id")
	assert.Contains(t, se.Error(), "invalid edit post schema")
}

func TestSchemaError_DecodeFailureHasNoFields(t *testing.T) {
	_, err := ParseCreatePost([]byte(`[1,2,3]`))
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Empty(t, se.Fields)
	assert.NotNil(t, errors.Unwrap(se))
}
