package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/api/respond"
	"github.com/iskandar/reply-notifier/internal/config"
	"github.com/iskandar/reply-notifier/internal/model"
	jobrepo "github.com/iskandar/reply-notifier/internal/repository/job"
	"github.com/iskandar/reply-notifier/internal/service/backfill"
)

const defaultJobListLimit = 100

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/admin/mock.go -package=mocks
type backfillService interface {
	Reconcile(ctx context.Context, batchSize int) (backfill.Report, error)
}

type jobService interface {
	ListJobs(ctx context.Context, limit int) ([]model.NotificationJob, error)
	GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
}

// Handler exposes the administrative surface: the backfill reconciler and
// delivery outcome reporting.
type Handler struct {
	backfill  backfillService
	jobs      jobService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(b backfillService, j jobService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{backfill: b, jobs: j, validator: v, cfg: cfg}
}

// BackfillRequest represents the JSON body of a backfill run request.
type BackfillRequest struct {
	BatchSize int `json:"batch_size" validate:"omitempty,min=1,max=1000"`
}

// RunBackfill handles POST requests to run the author-email reconciliation
// and returns the per-record outcome counts.
func (h *Handler) RunBackfill(c *ginext.Context) {
	var req BackfillRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to decode request body")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
			return
		}
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	report, err := h.backfill.Reconcile(c.Request.Context(), req.BatchSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("backfill run failed")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, report)
}

// ListJobs handles GET requests for recent notification jobs.
func (h *Handler) ListJobs(c *ginext.Context) {
	jobs, err := h.jobs.ListJobs(c.Request.Context(), defaultJobListLimit)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to list jobs")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, jobs)
}

// GetJobStatus handles GET requests for a single job's status.
func (h *Handler) GetJobStatus(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	status, err := h.jobs.GetJobStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, jobrepo.ErrJobNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("job not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get job status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, status)
}
