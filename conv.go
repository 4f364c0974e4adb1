// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pngchunk

package pngchunk

import (
	"fmt"
	"math"
)

// lengthField converts a payload size to the 32 bit chunk length field.
func lengthField(n int) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d bytes does not fit a chunk length", ErrSizeOverflow, n)
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}
