//go:build !gocv
// +build !gocv

package vision

import (
	"fmt"

	"shape-detector/internal/domain/port"
)

// NewBackend возвращает ошибку, если сборка без тега gocv.
func NewBackend() (port.VisionBackend, error) {
	return nil, fmt.Errorf("%w: gocv build tag is not enabled", port.ErrBackendUnavailable)
}
