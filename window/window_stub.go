//go:build !cgo

// =======================
// window/window_stub.go
// =======================

package window

import (
	"errors"

	"plot3d/config"
	"plot3d/logging"
)

func Run(_ *config.Config, _ logging.Logger) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
