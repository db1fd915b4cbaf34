package contact

import "errors"

var ErrInvalidEmail = errors.New("invalid email")
