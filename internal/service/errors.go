package service

import "errors"

var (
	ErrNoUserIDs      = errors.New("no user ids provided")
	ErrSessionExpired = errors.New("session expired, provide a new token")
	ErrOffline        = errors.New("offline")
	ErrUserNotFound   = errors.New("user not found")
)
