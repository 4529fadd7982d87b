// SPDX-License-Identifier: EPL-2.0

package sounds

import "errors"

var (
	ErrUnknownKind = errors.New("unknown segment kind")
	ErrNoSegments  = errors.New("effect has no segments")
	ErrUnnamed     = errors.New("effect has no name")
)
