// =======================
// term/term.go
// =======================

// Package term is the interactive terminal viewer.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"plot3d/config"
	"plot3d/logging"
)

// Run opens the terminal, runs the viewer until the user quits and restores the
// terminal afterwards.
func Run(cfg *config.Config, log logging.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()

	log.Infof("terminal viewer started, camera %+v", cfg.Camera)
	return NewViewer(s, cfg.Scene(), cfg.Camera, cfg.Terminal, log).Run()
}
