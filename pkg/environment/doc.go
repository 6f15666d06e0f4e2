// Package environment names the deployment environments the logger factory
// understands and carries the current one through context.Context.
//
//	ctx = environment.WithContext(ctx, environment.Parse(os.Getenv("APP_ENV")))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//
// Missing values result in the zero value ("").
package environment
