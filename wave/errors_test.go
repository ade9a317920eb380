// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	all := map[string]error{
		"ErrFormat":            ErrFormat,
		"ErrTruncated":         ErrTruncated,
		"ErrIO":                ErrIO,
		"ErrUnsupportedFormat": ErrUnsupportedFormat,
		"ErrInvalidArgument":   ErrInvalidArgument,
	}

	messages := make(map[string]string)
	for name, err := range all {
		if prev, found := messages[err.Error()]; found {
			t.Errorf("%s has same message as %s: %q", name, prev, err.Error())
		}
		messages[err.Error()] = name

		for other, otherErr := range all {
			if other != name && errors.Is(err, otherErr) {
				t.Errorf("errors.Is(%s, %s) = true, want false", name, other)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	for _, sentinel := range []error{ErrFormat, ErrTruncated, ErrIO, ErrUnsupportedFormat} {
		wrapped := fmt.Errorf("%w: detail", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
	}
}
