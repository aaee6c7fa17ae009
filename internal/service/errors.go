package service

import (
	"github.com/pkg/errors"
)

var (
	ErrConflict         = errors.New("credentials taken")
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrBookmarkNotFound = errors.New("bookmark not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUnauthorized     = errors.New("unauthorized")
)
