package mediawiki

import "errors"

var (
	ErrEmptyTitle   = errors.New("empty title")
	ErrInvalidTitle = errors.New("invalid title")
)
