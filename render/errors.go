// SPDX-License-Identifier: EPL-2.0

package render

import "errors"

var (
	ErrUnknownFormat = errors.New("render: unknown sample format")
	ErrNilPuller     = errors.New("render: nil puller")
)
