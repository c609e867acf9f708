package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrEmptySource   = errors.New("empty audio source identifier")
	ErrDecodeFailure = errors.New("audio decode failure")
)
