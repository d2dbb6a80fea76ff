// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// A logger has one console sink (JSON or text, stdout by default) and any
// number of file sinks, each filtering by its own level:
//
//	file, err := logger.RotatingFile("logs/app.log", 10, 5)
//	if err != nil {
//	    return err
//	}
//	defer file.Close()
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithOutput(os.Stderr),
//	    logger.WithFileOutput(file, slog.LevelDebug),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "probe succeeded", logger.Connection("MEDIN"))
//
// RotatingFile rotates by size using gopkg.in/natefinch/lumberjack.v2.
// Context extractors run on every record, so values stored in the context
// after the logger was built are still picked up.
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
