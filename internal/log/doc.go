// Package log builds the application logger on top of the standard slog
// package.
//
// This package extends slog to provide:
//   - Fan-out to multiple destinations (console, file) via MultiHandler
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Usage
//
//	logger, closer, err := log.Setup(cfg)
//	if err != nil {
//	    return err
//	}
//	defer closer()
//
//	logger.Info("crawl started", "seed", seed, "depth", depth)
//
// The returned logger is passed to components that accept *slog.Logger;
// nothing in the application relies on slog.Default.
package log
