// SPDX-License-Identifier: EPL-2.0

package stream

import "errors"

var (
	ErrInvalidWhence  = errors.New("invalid seek origin")
	ErrNegativeOffset = errors.New("seek before start of stream")
	ErrCommitted      = errors.New("write after commit")
)
