package leave

import "errors"

var (
	ErrRecordNotFound = errors.New("leave record not found")
	ErrNoEmployee     = errors.New("no employee selected")
)
