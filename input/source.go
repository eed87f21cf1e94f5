// Package input turns raw device state into a controller.Intent. Exactly one
// Source is active per session, chosen at startup.
package input

import (
	"errors"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/controller"
	"github.com/automoto/brawler/logger"
	"go.uber.org/zap"
)

// ErrInputFault reports device state the sampler does not understand. It is
// logged and degraded to no movement, never returned to the controller.
var ErrInputFault = errors.New("input fault")

// Source samples one tick of input.
type Source interface {
	Sample() controller.Intent
	Name() string
}

// Select returns the source for mode. InputModeAuto picks touch when the
// device is touch capable.
func Select(mode cfg.InputMode, touchCapable bool, keys KeyReader, pointers PointerReader, viewport Viewport) Source {
	switch mode {
	case cfg.InputModeKeyboard:
		return NewKeyboardSource(keys)
	case cfg.InputModeTouch:
		return NewTouchSource(pointers, viewport)
	case cfg.InputModeAuto:
		if touchCapable {
			return NewTouchSource(pointers, viewport)
		}
		return NewKeyboardSource(keys)
	}
	logger.L().Debug("unknown input mode, using keyboard",
		zap.String("system", "input"),
		zap.Int("mode", int(mode)),
		zap.Error(ErrInputFault))
	return NewKeyboardSource(keys)
}

// resolve folds two held directions into one. Left wins when both are held.
func resolve(left, right bool) controller.Direction {
	switch {
	case left:
		return controller.MoveLeft
	case right:
		return controller.MoveRight
	}
	return controller.MoveNone
}
