// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBufferSize = errors.New("buffer size must be positive")
)
