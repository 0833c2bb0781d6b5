package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/apperror"
	"social-workflow-web/pkg/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Sentry puts a per-request hub and transaction on the request context.
// Without a DSN the hub has no client and nothing is sent.
func Sentry() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		hub := sentry.GetHubFromContext(ctx)
		if hub == nil {
			hub = sentry.CurrentHub().Clone()
			ctx = sentry.SetHubOnContext(ctx, hub)
		}
		hub.Scope().SetRequest(c.Request)

		transaction := sentry.StartTransaction(ctx,
			fmt.Sprintf("%s %s", c.Request.Method, c.FullPath()),
			sentry.WithOpName("http.server"),
			sentry.ContinueFromRequest(c.Request),
			sentry.WithTransactionSource(sentry.SourceRoute),
		)
		defer transaction.Finish()
		c.Request = c.Request.WithContext(transaction.Context())

		c.Next()

		transaction.Status = sentry.HTTPtoSpanStatus(c.Writer.Status())
	}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code < http.StatusInternalServerError {
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Request failed",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString(string(domain.KeyRequestID)),
		)
		if hub := sentry.GetHubFromContext(c.Request.Context()); hub != nil {
			hub.CaptureException(err)
		}

		code := http.StatusInternalServerError
		message := "An unexpected error occurred. Please try again later."
		if appErr != nil && appErr.Code != http.StatusInternalServerError {
			code, message = appErr.Code, appErr.Message
		}
		response.Error(c, code, message, nil)
	}
}
