package handlers

import (
	"captive-portal/internal/metrics"
	"captive-portal/internal/middlewares"
	"captive-portal/internal/models"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// POSTSubmitHandler stores a lead form and sends the client on to the hotspot
// landing page. The response is the same 302 whatever happened to the
// submission; a captive client must never be shown an error page.
func POSTSubmitHandler(ctx *middlewares.AppContext) {
	result := processSubmission(ctx)

	logSubmissionResult(ctx, result)
	metrics.SubmissionsTotal.WithLabelValues(result.Outcome.String()).Inc()

	ctx.Redirect(ctx.Config.Portal.RedirectURL, http.StatusFound)
}

func processSubmission(ctx *middlewares.AppContext) (result models.SubmissionResult) {
	defer func() {
		if rec := recover(); rec != nil {
			ctx.Logger.Debug("recovered panic while handling submission", "panic", rec, "stack", string(debug.Stack()))
			result = models.SubmissionResult{
				Outcome: models.OutcomeUnexpectedError,
				Err:     fmt.Errorf("panic: %v", rec),
			}
		}
	}()

	form, err := decodeSubmissionForm(ctx.Response, ctx.Request, ctx.Config.Server.MaxBodyBytes)
	if err != nil {
		return models.SubmissionResult{Outcome: models.OutcomeRejected, Err: err}
	}

	form = form.Normalize()
	if err := form.Validate(); err != nil {
		return models.SubmissionResult{Outcome: models.OutcomeRejected, Err: err}
	}

	path := ctx.Config.Storage.Path()
	if err := ctx.Storage.EnsureHeaderExists(path); err != nil {
		return models.SubmissionResult{Outcome: models.OutcomeStorageFailed, Err: err}
	}

	record := models.NewSubmission(form, middlewares.ResolveClientAddress(ctx.Request), time.Now())
	if err := ctx.Storage.AppendRecord(path, record); err != nil {
		return models.SubmissionResult{Outcome: models.OutcomeStorageFailed, Err: err}
	}

	return models.SubmissionResult{Outcome: models.OutcomeAccepted, Submission: &record}
}

func logSubmissionResult(ctx *middlewares.AppContext, result models.SubmissionResult) {
	logger := ctx.Logger.With("outcome", result.Outcome.String())
	if reqID := middleware.GetReqID(ctx.Request.Context()); reqID != "" {
		logger = logger.With("request_id", reqID)
	}

	switch result.Outcome {
	case models.OutcomeAccepted:
		logger.Debug("submission accepted",
			"email", RedactEmail(result.Submission.Email),
			"client_address", result.Submission.ClientAddress,
		)
	case models.OutcomeRejected:
		logger.Warn("submission rejected", "error", result.Err)
	case models.OutcomeStorageFailed:
		logger.Error("failed to write submission", "error", result.Err)
	default:
		logger.Error("unexpected error handling submission", "error", result.Err)
	}
}
