// Package logger builds *slog.Logger instances with functional options and
// provides attribute helpers with consistent keys for the hook and
// sanitization packages.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so request scoped values reach the output without being
// threaded through each call.
//
// # Usage
//
//	log := logger.New(logger.WithEnvironment(os.Getenv("APP_ENV"), "blog"))
//	reg := lifecycle.NewRegistry(lifecycle.WithLogger(log))
//
//	log.Debug("sanitizer declared",
//	    logger.Model("Post"),
//	    logger.Hook("before_save"),
//	    logger.Fields("title", "body"),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
//
// Discard returns a logger that drops everything; packages in this module use
// it as their default so they stay silent unless a logger is supplied.
package logger
