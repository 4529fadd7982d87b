// SPDX-License-Identifier: EPL-2.0

package icon

import "errors"

var (
	ErrInvalidSize = errors.New("icon size must be positive")
	ErrNoImages    = errors.New("no images to pack")
)
