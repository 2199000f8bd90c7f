package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"serverless_blog/internal/service"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal body %q: %v", w.Body.String(), err)
	}
	return m
}

const validSignup = `{"email":"a@x.com","firstName":"Ann","password":"password1"}`
const validSignin = `{"email":"a@x.com","password":"password1"}`

func TestUserHandlers_SignUpAndSignIn(t *testing.T) {
	auth := &mockAuth{signUpToken: "tok-up", signInToken: "tok-in"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/user/signup", validSignup)
	if w.Code != http.StatusOK {
		t.Fatalf("signup status=%d, body=%s", w.Code, w.Body.String())
	}
	if m := decodeBody(t, w); m["token"] != "tok-up" {
		t.Fatalf("expected token tok-up, got %v", m["token"])
	}
	if auth.lastSignUp.Email != "a@x.com" || auth.lastSignUp.FirstName != "Ann" {
		t.Fatalf("unexpected signup input: %+v", auth.lastSignUp)
	}

	w = postJSON(r, "/user/signin", validSignin)
	if w.Code != http.StatusOK {
		t.Fatalf("signin status=%d, body=%s", w.Code, w.Body.String())
	}
	if m := decodeBody(t, w); m["token"] != "tok-in" {
		t.Fatalf("expected token tok-in, got %v", m["token"])
	}
}

func TestUserHandlers_SignUpErrors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantKey  string
		wantMsg  string
	}{
		{
			name:     "schema violation",
			body:     `{"email":"nope","firstName":"Ann","password":"password1"}`,
			wantCode: http.StatusBadRequest,
			wantKey:  "msg",
			wantMsg:  "invalid signup schema",
		},
		{
			name:     "duplicate email",
			body:     validSignup,
			svcErr:   service.ErrUserExists,
			wantCode: http.StatusConflict,
			wantKey:  "message",
			wantMsg:  "user already exists, try signin in",
		},
		{
			name:     "storage failure",
			body:     validSignup,
			svcErr:   errors.New("db down"),
			wantCode: http.StatusInternalServerError,
			wantKey:  "message",
			wantMsg:  "some error occurred",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{signUpErr: tc.svcErr}
			r := newTestRouter(&service.Service{Authorization: auth})

			w := postJSON(r, "/user/signup", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			if m := decodeBody(t, w); m[tc.wantKey] != tc.wantMsg {
				t.Fatalf("%s: got %v, want %q", tc.wantKey, m[tc.wantKey], tc.wantMsg)
			}
			if tc.wantCode == http.StatusBadRequest && auth.signUpCalls != 0 {
				t.Fatalf("service must not be called for invalid payloads")
			}
		})
	}
}

func TestUserHandlers_SchemaErrorListsFields(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}})

	w := postJSON(r, "/user/signup", `{"email":"a@x.com","firstName":"Ann","password":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	m := decodeBody(t, w)
	fields, ok := m["errors"].(map[string]any)
	if !ok || fields["password"] == nil {
		t.Fatalf("expected password field error, got %v", m)
	}
}

func TestUserHandlers_SignInErrors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		svcErr   error
		wantCode int
		wantKey  string
		wantMsg  string
	}{
		{"bad body", `{"email":1}`, nil, http.StatusBadRequest, "msg", "invalid signin schema"},
		{"unknown user", validSignin, service.ErrUserNotFound, http.StatusNotFound, "message", "user does not exist, try signin up first"},
		{"wrong password", validSignin, service.ErrInvalidCredentials, http.StatusUnauthorized, "message", "invalid credentials"},
		{"storage failure", validSignin, errors.New("db down"), http.StatusInternalServerError, "message", "some error occurred"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: &mockAuth{signInErr: tc.svcErr}})

			w := postJSON(r, "/user/signin", tc.body)
			if w.Code != tc.wantCode {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.wantCode, w.Body.String())
			}
			m := decodeBody(t, w)
			if m[tc.wantKey] != tc.wantMsg {
				t.Fatalf("%s: got %v, want %q", tc.wantKey, m[tc.wantKey], tc.wantMsg)
			}
			if _, leaked := m["token"]; leaked {
				t.Fatalf("no token may be issued on failure")
			}
		})
	}
}
