// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers that keep key names consistent across the
// module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "demo"),
//	    logger.WithContextValue("request_id", middleware.RequestIDKey),
//	)
//
//	log.WarnContext(ctx, "segment could not be decrypted",
//	    logger.Segment("userInfo"),
//	    logger.Error(err),
//	)
//
// New defaults to JSON output at info level on stdout. WithEnvironment
// switches to text output at debug level for development. Discard returns a
// logger that drops everything, which is handy in tests.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
