package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/iskandar/reply-notifier/internal/config"
	mocks "github.com/iskandar/reply-notifier/internal/mocks/api/handlers/admin"
	"github.com/iskandar/reply-notifier/internal/model"
	jobrepo "github.com/iskandar/reply-notifier/internal/repository/job"
	"github.com/iskandar/reply-notifier/internal/service/backfill"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockbackfillService, *mocks.MockjobService, *config.Config) {
	ctrl := gomock.NewController(t)
	mockBackfill := mocks.NewMockbackfillService(ctrl)
	mockJobs := mocks.NewMockjobService(ctrl)
	cfg := &config.Config{}
	validate := validator.New()
	handler := NewHandler(mockBackfill, mockJobs, validate, cfg)
	return handler, mockBackfill, mockJobs, cfg
}

func TestHandler_RunBackfill_Success(t *testing.T) {
	handler, mockBackfill, _, _ := setupHandler(t)

	reqBody := BackfillRequest{BatchSize: 50}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/backfill", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockBackfill.EXPECT().
		Reconcile(gomock.Any(), 50).
		Return(backfill.Report{Scanned: 10, Updated: 8, MissingAddress: 2}, nil)

	handler.RunBackfill(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"updated":8`)
}

func TestHandler_RunBackfill_EmptyBodyUsesDefaults(t *testing.T) {
	handler, mockBackfill, _, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/backfill", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockBackfill.EXPECT().
		Reconcile(gomock.Any(), 0).
		Return(backfill.Report{}, nil)

	handler.RunBackfill(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_RunBackfill_InvalidBatchSize(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	reqBody := BackfillRequest{BatchSize: 100000}
	bodyBytes, _ := json.Marshal(reqBody)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/backfill", bytes.NewReader(bodyBytes))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.RunBackfill(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_ListJobs_Success(t *testing.T) {
	handler, _, mockJobs, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/jobs", nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	mockJobs.EXPECT().
		ListJobs(gomock.Any(), defaultJobListLimit).
		Return([]model.NotificationJob{{ID: uuid.New(), Status: model.JobStatusDelivered}}, nil)

	handler.ListJobs(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetJobStatus_Success(t *testing.T) {
	handler, _, mockJobs, cfg := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/jobs/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockJobs.EXPECT().
		GetJobStatusByID(gomock.Any(), cfg.Retry, id).
		Return(model.JobStatusDelivered, nil)

	handler.GetJobStatus(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_GetJobStatus_NotFound(t *testing.T) {
	handler, _, mockJobs, cfg := setupHandler(t)

	id := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/jobs/"+id.String(), nil)
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: id.String()}}

	mockJobs.EXPECT().
		GetJobStatusByID(gomock.Any(), cfg.Retry, id).
		Return("", jobrepo.ErrJobNotFound)

	handler.GetJobStatus(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}
