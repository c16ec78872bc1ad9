// Package logger provides structured logging for seqkit using zerolog.
//
// Loggers are built from a Config (level, format, output) and carry
// component and run-id fields. The library packages never log on their
// own; the recipe compiler and the seqkit command take a *Logger.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("recipe").WithRunID(runID)
//	log.Info("compiled", logger.Fields("steps", 3))
package logger
