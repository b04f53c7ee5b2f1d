package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"devserve/core/browser"
	"devserve/core/loader"
	"devserve/core/server"
	"devserve/feature/static"

	"go.uber.org/zap"
)

const (
	announceFormat = "Server running at %s\n"
	shutdownNotice = "\nShutting down server...\n"
)

// Config holds everything a single launcher run needs.
type Config struct {
	// Server is the listen configuration.
	Server server.Config
	// Root is the document root, normally the working directory at launch.
	Root string
	// OpenBrowser points the default browser at the server once it listens.
	OpenBrowser bool
}

// Launcher binds, announces and runs the static file server.
type Launcher struct {
	cfg    Config
	opener browser.Opener
	out    io.Writer
	logger *zap.Logger
}

// New creates a launcher. Announcements are written to out; opener is only
// used when cfg.OpenBrowser is set.
func New(cfg Config, opener browser.Opener, out io.Writer, logger *zap.Logger) *Launcher {
	if opener == nil {
		opener = browser.Nop
	}
	return &Launcher{cfg: cfg, opener: opener, out: out, logger: logger}
}

// Run binds the configured address and serves until ctx is cancelled.
// A bind failure is returned as *BindError before anything is printed.
func (l *Launcher) Run(ctx context.Context) error {
	ln, err := l.Listen()
	if err != nil {
		return err
	}
	return l.Serve(ctx, ln)
}

// Listen binds the configured address.
func (l *Launcher) Listen() (net.Listener, error) {
	addr := l.cfg.Server.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, &BindError{Addr: addr, Err: err}
	}
	l.logger.Debug("Bound listener", zap.String("addr", ln.Addr().String()))
	return ln, nil
}

// Serve announces the server, opens the browser and serves on ln until ctx is
// cancelled. It owns ln and closes it before returning.
func (l *Launcher) Serve(ctx context.Context, ln net.Listener) error {
	app := server.NewApp(l.logger)

	mgr := loader.NewManager()
	mgr.Register(static.NewFeature(l.cfg.Root, l.logger))
	if err := mgr.LoadAll(app); err != nil {
		_ = ln.Close()
		return fmt.Errorf("failed to load features: %w", err)
	}

	url := server.URL(boundPort(ln, l.cfg.Server.Port))
	fmt.Fprintf(l.out, announceFormat, url)
	l.logger.Info("Serving files", zap.String("root", l.cfg.Root), zap.String("url", url))

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listener(ln)
	}()

	// The opener may block until the helper exits; serving never waits on it
	if l.cfg.OpenBrowser {
		go browser.OpenQuietly(l.opener, url, l.logger)
	}

	select {
	case err := <-errCh:
		// The serve loop ended without being asked to
		_ = ln.Close()
		if err == nil {
			return errors.New("server stopped unexpectedly")
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	fmt.Fprint(l.out, shutdownNotice)
	l.logger.Info("Shutting down server")
	err := app.Shutdown()
	// Shutdown may race the serve loop's start; closing ln unblocks Accept either way
	_ = ln.Close()
	<-errCh
	if err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

func boundPort(ln net.Listener, fallback int) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return fallback
}
