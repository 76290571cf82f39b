package model

import "errors"

var (
	ErrTokenMissing = errors.New("authorization token missing")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)
