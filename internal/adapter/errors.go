package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrOffline      = errors.New("no internet connection")
	ErrNotFound     = errors.New("user not found")
	ErrBadResponse  = errors.New("malformed response")
)
