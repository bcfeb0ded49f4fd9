package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware returns a Huma middleware that attaches a LogData to every
// request context and emits one structured entry per completed request.
func Middleware(log *logrus.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		operationID := ctx.Operation().OperationID
		log.Infof("Handler.%v.Start", operationID)

		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))

		endTimer()
		logData.Log().WithField("httpStatus", ctx.Status()).Infof("Handler.%v.Complete", operationID)
	}
}
