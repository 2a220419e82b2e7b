// Package logging configures structured logging for httpfixture.
//
// It wraps log/slog. Generators never log; the fixture runner and the CLI
// accept a *slog.Logger and report what they generate at debug level.
//
//	logger := logging.New(logging.FromEnv(logging.DefaultConfig()))
//	logger.Debug("generated batch", "fixture", "errors", "count", 50)
//
// Logs always go to stderr by default so fixtures written to stdout can be
// piped into other tools.
package logging
