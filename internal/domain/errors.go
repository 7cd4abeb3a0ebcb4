package domain

import "errors"

var (
	ErrContentNotFound     = errors.New("content not found")
	ErrNewsNotFound        = errors.New("news item not found")
	ErrProviderUnavailable = errors.New("assessment provider not configured")
)
