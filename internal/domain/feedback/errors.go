package feedback

import "errors"

var ErrMessageRequired = errors.New("feedback message is required")
