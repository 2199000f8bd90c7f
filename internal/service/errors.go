package service

import "errors"

// Domain errors for auth and post flows.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrPostNotFound       = errors.New("post not found")
	ErrForbidden          = errors.New("not the post author")
)
