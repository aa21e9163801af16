// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Compiler output goes to stderr so generated reports and trees printed
// on stdout stay clean.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Compiling package", zap.String("package", "ApplicationTextpad"))
//	logger.Error("Write failed", zap.Error(err))
package logging
