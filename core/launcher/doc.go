// Package launcher runs the local static file server from bind to shutdown.
//
// A run is linear: bind the listen address, print
// "Server running at http://localhost:<port>/", open the default browser
// (best-effort), serve until the context is cancelled, then print the shutdown
// notice and release the socket.
//
// Only a bind failure is fatal. It is returned as *BindError without printing
// anything or opening the browser. Browser failures are swallowed and request
// errors are answered by the HTTP layer.
//
// # Usage
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	l := launcher.New(launcher.Config{Server: cfg.Server, Root: cwd, OpenBrowser: true},
//	    browser.NewSystem(), os.Stdout, log)
//	if err := l.Run(ctx); err != nil {
//	    return err
//	}
package launcher
