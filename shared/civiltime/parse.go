package civiltime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const Layout = "2006-01-02T15:04"

var ErrMalformed = errors.New("malformed civil date-time")

// MalformedError reports civil input that could not be read as a wall-clock reading.
type MalformedError struct {
	Input  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed civil date-time %q: %s", e.Input, e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

var layouts = []string{
	Layout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

// Parse reads "YYYY-MM-DDTHH:MM". A trailing ":00" seconds field and a space
// instead of the "T" are tolerated. Non-zero seconds are rejected.
func Parse(text string) (CivilDateTime, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return CivilDateTime{}, &MalformedError{Input: text, Reason: "empty"}
	}

	reason := "expected YYYY-MM-DDTHH:MM"

	for _, layout := range layouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			var parseErr *time.ParseError
			if errors.As(err, &parseErr) && parseErr.Message != "" {
				reason = strings.TrimPrefix(parseErr.Message, ": ")
			}

			continue
		}

		if parsed.Second() != 0 {
			return CivilDateTime{}, &MalformedError{Input: text, Reason: "seconds must be 00"}
		}

		return civilFromMillis(parsed.UnixMilli()), nil
	}

	return CivilDateTime{}, &MalformedError{Input: text, Reason: reason}
}

// MustParse is Parse for literals known to be valid.
func MustParse(text string) CivilDateTime {
	c, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return c
}
