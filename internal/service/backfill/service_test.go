package backfill

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iskandar/reply-notifier/internal/identity"
	mocks "github.com/iskandar/reply-notifier/internal/mocks/service/backfill"
	"github.com/iskandar/reply-notifier/internal/model"
	commentrepo "github.com/iskandar/reply-notifier/internal/repository/comment"
)

func legacyComment() model.Comment {
	return model.Comment{
		ID:            uuid.New(),
		ContentItemID: uuid.New(),
		AuthorID:      uuid.New(),
		Body:          "imported without a snapshot",
	}
}

func TestService_Reconcile_RepairsMissingSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	first := legacyComment()
	second := legacyComment()

	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), uuid.Nil, 100).
		Return([]model.Comment{first, second}, nil)

	mockResolver.EXPECT().
		GetNotificationAddress(gomock.Any(), first.AuthorID).
		Return("first@example.com", nil)
	mockRepo.EXPECT().
		SetAuthorEmail(gomock.Any(), first.ID, "first@example.com").
		Return(nil)

	mockResolver.EXPECT().
		GetNotificationAddress(gomock.Any(), second.AuthorID).
		Return("second@example.com", nil)
	mockRepo.EXPECT().
		SetAuthorEmail(gomock.Any(), second.ID, "second@example.com").
		Return(nil)

	report, err := svc.Reconcile(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, Report{Scanned: 2, Updated: 2}, report)
}

func TestService_Reconcile_CountsUnresolvableAuthors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	noAddress := legacyComment()
	broken := legacyComment()
	fine := legacyComment()

	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), uuid.Nil, 100).
		Return([]model.Comment{noAddress, broken, fine}, nil)

	mockResolver.EXPECT().
		GetNotificationAddress(gomock.Any(), noAddress.AuthorID).
		Return("", identity.ErrNoAddress)
	mockResolver.EXPECT().
		GetNotificationAddress(gomock.Any(), broken.AuthorID).
		Return("", errors.New("connection refused"))
	mockResolver.EXPECT().
		GetNotificationAddress(gomock.Any(), fine.AuthorID).
		Return("fine@example.com", nil)
	mockRepo.EXPECT().
		SetAuthorEmail(gomock.Any(), fine.ID, "fine@example.com").
		Return(nil)

	report, err := svc.Reconcile(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, Report{Scanned: 3, Updated: 1, MissingAddress: 1, Failed: 1}, report)
}

func TestService_Reconcile_SecondRunFindsNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), uuid.Nil, 100).
		Return(nil, nil)

	report, err := svc.Reconcile(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, Report{}, report)
}

func TestService_Reconcile_PaginatesKeysetBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	first := legacyComment()
	second := legacyComment()
	third := legacyComment()

	// A full first batch triggers a second fetch keyed past its last ID.
	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), uuid.Nil, 2).
		Return([]model.Comment{first, second}, nil)
	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), second.ID, 2).
		Return([]model.Comment{third}, nil)

	for _, c := range []model.Comment{first, second, third} {
		mockResolver.EXPECT().
			GetNotificationAddress(gomock.Any(), c.AuthorID).
			Return("user@example.com", nil)
		mockRepo.EXPECT().
			SetAuthorEmail(gomock.Any(), c.ID, "user@example.com").
			Return(nil)
	}

	report, err := svc.Reconcile(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, Report{Scanned: 3, Updated: 3}, report)
}

func TestService_Reconcile_SkipsConcurrentlyRepairedComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	c := legacyComment()

	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), uuid.Nil, 100).
		Return([]model.Comment{c}, nil)
	mockResolver.EXPECT().
		GetNotificationAddress(gomock.Any(), c.AuthorID).
		Return("user@example.com", nil)
	mockRepo.EXPECT().
		SetAuthorEmail(gomock.Any(), c.ID, "user@example.com").
		Return(commentrepo.ErrCommentNotFound)

	report, err := svc.Reconcile(context.Background(), 100)
	require.NoError(t, err)

	assert.Equal(t, Report{Scanned: 1}, report)
}

func TestService_Reconcile_ZeroBatchSizeUsesDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	mockRepo.EXPECT().
		ListMissingAuthorEmail(gomock.Any(), uuid.Nil, DefaultBatchSize).
		Return(nil, nil)

	_, err := svc.Reconcile(context.Background(), 0)
	require.NoError(t, err)
}

func TestService_Reconcile_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockcommentRepository(ctrl)
	mockResolver := mocks.NewMockidentityResolver(ctrl)
	svc := NewService(mockRepo, mockResolver)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Reconcile(ctx, 100)
	assert.ErrorIs(t, err, context.Canceled)
}
