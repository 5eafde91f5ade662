// Package httpserver runs an http.Handler with graceful shutdown and
// structured logging via slog.
//
// Run listens on the configured address, blocks until ctx is cancelled or
// the listener fails, and then shuts the server down with a bounded deadline.
// Shutdown may also be called directly from another goroutine.
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//		httpserver.WithLogger(log),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Listen failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; use errors.Is to tell them apart.
package httpserver
