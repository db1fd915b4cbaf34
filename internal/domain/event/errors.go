package event

import "errors"

var (
	ErrNotFound           = errors.New("event not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrInvalidID          = errors.New("invalid id")
	ErrNameRequired       = errors.New("event name is required")
	ErrNoUpdates          = errors.New("no update data provided")
)
