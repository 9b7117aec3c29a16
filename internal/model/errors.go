package model

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when a platform name is not recognized.
var ErrUnknownPlatform = errors.New("unknown platform")

// ParseError reports a URL that no registered parser recognized. It is only
// produced in strict mode; otherwise unmatched URLs are silently skipped.
type ParseError struct {
	URL string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized URL: %s", e.URL)
}
