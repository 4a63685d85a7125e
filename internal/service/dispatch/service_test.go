package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/iskandar/reply-notifier/internal/mocks/service/dispatch"
	"github.com/iskandar/reply-notifier/internal/model"
	"github.com/iskandar/reply-notifier/internal/rabbitmq/queue"
)

type dispatchMocks struct {
	repo  *mocks.MockjobRepository
	queue *mocks.MockjobPublisher
	cache *mocks.Mockcache
}

func newDispatch(ctrl *gomock.Controller) (*Service, dispatchMocks) {
	m := dispatchMocks{
		repo:  mocks.NewMockjobRepository(ctrl),
		queue: mocks.NewMockjobPublisher(ctrl),
		cache: mocks.NewMockcache(ctrl),
	}

	return NewService(m.repo, m.queue, m.cache), m
}

var testStrategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func makeJob() model.NotificationJob {
	return model.NotificationJob{
		RecipientAddress: "parent@example.com",
		ReplyID:          uuid.New(),
		ParentID:         uuid.New(),
		ContentItemID:    uuid.New(),
		ReplyExcerpt:     "I disagree",
		ParentExcerpt:    "original take",
	}
}

func TestService_Enqueue_RecordsPendingAndPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	job := makeJob()
	jobID := uuid.New()

	m.repo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j model.NotificationJob) (uuid.UUID, error) {
			assert.Equal(t, model.JobStatusPending, j.Status)
			assert.Zero(t, j.Attempts)
			return jobID, nil
		})
	m.cache.EXPECT().
		SetWithRetry(gomock.Any(), testStrategy, jobID.String(), model.JobStatusPending).
		Return(nil)
	m.queue.EXPECT().
		Publish(gomock.Any(), testStrategy).
		DoAndReturn(func(msg queue.JobMessage, _ retry.Strategy) error {
			assert.Equal(t, jobID, msg.ID)
			assert.Equal(t, job.RecipientAddress, msg.RecipientAddress)
			assert.Equal(t, job.ReplyExcerpt, msg.ReplyExcerpt)
			return nil
		})

	id, err := svc.Enqueue(context.Background(), testStrategy, job)
	require.NoError(t, err)
	assert.Equal(t, jobID, id)
}

func TestService_Enqueue_PublishFailureKeepsPendingRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	jobID := uuid.New()

	m.repo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any()).
		Return(jobID, nil)
	m.cache.EXPECT().
		SetWithRetry(gomock.Any(), testStrategy, jobID.String(), model.JobStatusPending).
		Return(nil)
	m.queue.EXPECT().
		Publish(gomock.Any(), testStrategy).
		Return(errors.New("broker unavailable"))

	// The pending row is the source of truth; the caller still gets the id.
	id, err := svc.Enqueue(context.Background(), testStrategy, makeJob())
	require.NoError(t, err)
	assert.Equal(t, jobID, id)
}

func TestService_Enqueue_CreateJobFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	m.repo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, errors.New("db down"))

	_, err := svc.Enqueue(context.Background(), testStrategy, makeJob())
	assert.Error(t, err)
}

func TestService_RecordSuppressed_WritesTerminalAuditRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	jobID := uuid.New()

	m.repo.EXPECT().
		CreateJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j model.NotificationJob) (uuid.UUID, error) {
			assert.Equal(t, model.JobStatusSuppressed, j.Status)
			assert.Equal(t, "self-reply", j.LastError)
			return jobID, nil
		})

	id, err := svc.RecordSuppressed(context.Background(), makeJob(), "self-reply")
	require.NoError(t, err)
	assert.Equal(t, jobID, id)
}

func TestService_GetJobStatusByID_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	id := uuid.New()

	m.cache.EXPECT().
		GetWithRetry(gomock.Any(), testStrategy, id.String()).
		Return(model.JobStatusDelivered, nil)

	status, err := svc.GetJobStatusByID(context.Background(), testStrategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusDelivered, status)
}

func TestService_GetJobStatusByID_CacheMissFallsBackToRepo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	id := uuid.New()

	m.cache.EXPECT().
		GetWithRetry(gomock.Any(), testStrategy, id.String()).
		Return("", redis.Nil)
	m.repo.EXPECT().
		GetJobStatus(gomock.Any(), id).
		Return(model.JobStatusFailed, nil)
	m.cache.EXPECT().
		SetWithRetry(gomock.Any(), testStrategy, id.String(), model.JobStatusFailed).
		Return(nil)

	status, err := svc.GetJobStatusByID(context.Background(), testStrategy, id)
	require.NoError(t, err)
	assert.Equal(t, model.JobStatusFailed, status)
}

func TestService_MarkDelivered_UpdatesRepoAndCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	id := uuid.New()

	m.repo.EXPECT().
		MarkDelivered(gomock.Any(), id, 2).
		Return(nil)
	m.cache.EXPECT().
		SetWithRetry(gomock.Any(), testStrategy, id.String(), model.JobStatusDelivered).
		Return(nil)

	require.NoError(t, svc.MarkDelivered(context.Background(), testStrategy, id, 2))
}

func TestService_RepublishStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	stale := model.NotificationJob{
		ID:               uuid.New(),
		RecipientAddress: "parent@example.com",
		ContentItemID:    uuid.New(),
		Status:           model.JobStatusPending,
		Attempts:         1,
	}
	broken := model.NotificationJob{
		ID:     uuid.New(),
		Status: model.JobStatusPending,
	}

	m.repo.EXPECT().
		ResetStaleSending(gomock.Any(), 10*time.Minute, 100).
		Return(nil, nil)
	m.repo.EXPECT().
		ListStalePending(gomock.Any(), time.Minute, 100).
		Return([]model.NotificationJob{stale, broken}, nil)
	m.queue.EXPECT().
		Publish(gomock.Any(), testStrategy).
		DoAndReturn(func(msg queue.JobMessage, _ retry.Strategy) error {
			assert.Equal(t, stale.ID, msg.ID)
			assert.Equal(t, stale.Attempts, msg.Attempts)
			return nil
		})
	m.cache.EXPECT().
		SetWithRetry(gomock.Any(), testStrategy, stale.ID.String(), model.JobStatusPending).
		Return(nil)
	m.queue.EXPECT().
		Publish(gomock.Any(), testStrategy).
		Return(errors.New("broker unavailable"))

	count, err := svc.RepublishStale(context.Background(), testStrategy, time.Minute, 10*time.Minute, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_RepublishStale_AbandonedSendingJobRejoinsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	// A worker claimed this job and crashed mid-delivery; the row was reset
	// to pending with its spent attempts intact and must be republished.
	abandoned := model.NotificationJob{
		ID:               uuid.New(),
		RecipientAddress: "parent@example.com",
		ContentItemID:    uuid.New(),
		ReplyExcerpt:     "I disagree",
		Status:           model.JobStatusPending,
		Attempts:         3,
		LastError:        "timeout 3",
	}

	m.repo.EXPECT().
		ResetStaleSending(gomock.Any(), 10*time.Minute, 100).
		Return([]model.NotificationJob{abandoned}, nil)
	m.repo.EXPECT().
		ListStalePending(gomock.Any(), time.Minute, 100).
		Return(nil, nil)
	m.queue.EXPECT().
		Publish(gomock.Any(), testStrategy).
		DoAndReturn(func(msg queue.JobMessage, _ retry.Strategy) error {
			assert.Equal(t, abandoned.ID, msg.ID)
			assert.Equal(t, 3, msg.Attempts)
			return nil
		})
	m.cache.EXPECT().
		SetWithRetry(gomock.Any(), testStrategy, abandoned.ID.String(), model.JobStatusPending).
		Return(nil)

	count, err := svc.RepublishStale(context.Background(), testStrategy, time.Minute, 10*time.Minute, 100)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestService_RepublishStale_ResetFailureStopsSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newDispatch(ctrl)

	m.repo.EXPECT().
		ResetStaleSending(gomock.Any(), 10*time.Minute, 100).
		Return(nil, errors.New("db down"))

	_, err := svc.RepublishStale(context.Background(), testStrategy, time.Minute, 10*time.Minute, 100)
	assert.Error(t, err)
}
