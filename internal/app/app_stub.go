//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"colorlife/internal/core"
)

// ErrNoGUI is returned by Run when the binary was built without the ebiten
// build tag.
var ErrNoGUI = errors.New("the window front end requires building with -tags ebiten")

// Run reports that the GUI is unavailable in headless builds.
func Run(core.Sim, *Config, int64, *slog.Logger) error {
	return ErrNoGUI
}
