// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	// ErrInvalidArgument reports an out-of-range index, a nil buffer or a
	// nil asset. The engine state is left untouched.
	ErrInvalidArgument = errors.New("engine: invalid argument")
	// ErrEmptySlot reports a Feed of an index that holds no asset.
	ErrEmptySlot = errors.New("engine: no asset registered at index")
)
