package browser

import (
	"fmt"
	"io"
	"sync"

	pkgbrowser "github.com/pkg/browser"
	"go.uber.org/zap"
)

// Opener defines the capability of pointing a browser at a URL.
type Opener interface {
	// Open navigates the browser to url.
	Open(url string) error
}

// Func adapts a plain function to the Opener interface.
type Func func(url string) error

// Open calls f(url).
func (f Func) Open(url string) error {
	return f(url)
}

// Nop is an Opener that does nothing.
var Nop Opener = Func(func(string) error { return nil })

var silenceHelper sync.Once

// System opens URLs with the platform's default browser
// (xdg-open, open, or rundll32 depending on the OS).
// OpenURL waits for the helper to exit, so callers should not block on it.
type System struct{}

// NewSystem returns a System opener. Helper output is discarded so stdout
// only carries the launcher's own lines.
func NewSystem() *System {
	// pkg/browser writes helper output through package-level writers
	silenceHelper.Do(func() {
		pkgbrowser.Stdout = io.Discard
		pkgbrowser.Stderr = io.Discard
	})
	return &System{}
}

// Open launches the default browser at url.
func (s *System) Open(url string) error {
	if err := pkgbrowser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// OpenQuietly calls o.Open(url) and swallows any failure, including panics.
// Failures are only visible at debug level.
func OpenQuietly(o Opener, url string, log *zap.Logger) {
	defer func() {
		if r := recover(); r != nil {
			log.Debug("Browser opener panicked", zap.String("url", url), zap.Any("panic", r))
		}
	}()

	if err := o.Open(url); err != nil {
		log.Debug("Could not open browser", zap.String("url", url), zap.Error(err))
		return
	}
	log.Debug("Opened browser", zap.String("url", url))
}
