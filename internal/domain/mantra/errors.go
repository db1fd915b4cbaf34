package mantra

import "errors"

var (
	ErrNotFound           = errors.New("mantra not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrCategoryRequired   = errors.New("category is required")
	ErrInvalidCategory    = errors.New("invalid category")
)
