// Package logger builds *slog.Logger instances for programs embedding synckit
// and provides attribute helpers used by the kit's own packages.
//
// New applies a list of Option values on top of production defaults (JSON,
// INFO, stdout), picks slog.NewTextHandler or slog.NewJSONHandler and, when
// context extractors are registered, wraps the handler with
// LogHandlerDecorator so attributes stored in a context.Context are added to
// every record logged with that context.
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(logger.Component("ingest")),
//	)
//	t := stoppable.New(stoppable.WithLogger(log), stoppable.WithName("poller"))
//
// Config carries level and format with env and yaml tags so it can be filled
// by pkg/config and applied through WithConfig.
//
// Kit packages never log unless given a logger; Discard is their default.
//
// Attribute helpers such as Error, ThreadName and ThreadID keep key names
// consistent. Error and Errors return an empty Attr for nil errors, so
//
//	log.Info("worker stopped", logger.Error(t.Err()))
//
// needs no extra nil check.
package logger
