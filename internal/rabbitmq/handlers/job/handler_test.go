package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/iskandar/reply-notifier/internal/mocks/rabbitmq/handlers/job"
	"github.com/iskandar/reply-notifier/internal/notify"
	"github.com/iskandar/reply-notifier/internal/rabbitmq/queue"
	jobrepo "github.com/iskandar/reply-notifier/internal/repository/job"
)

// scriptedSender returns the queued errors one per Send call, then nil.
type scriptedSender struct {
	errs  []error
	calls int
}

func (s *scriptedSender) Send(address string, doc notify.Rendered) error {
	s.calls++
	if len(s.errs) == 0 {
		return nil
	}

	err := s.errs[0]
	s.errs = s.errs[1:]
	return err
}

func makeMessage() queue.JobMessage {
	return queue.JobMessage{
		ID:               uuid.New(),
		RecipientAddress: "parent@example.com",
		ContentItemID:    uuid.New(),
		ReplyExcerpt:     "I disagree",
		ParentExcerpt:    "original take",
	}
}

func deliveryPolicy(attempts int) retry.Strategy {
	return retry.Strategy{Attempts: attempts, Delay: time.Millisecond, Backoff: 2}
}

func TestHandler_HandleMessage_DeliversFirstAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	sender := &scriptedSender{}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), nil)

	msg := makeMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(nil)
	mockService.EXPECT().
		MarkDelivered(gomock.Any(), strategy, msg.ID, 1).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)

	assert.Equal(t, 1, sender.calls)
}

func TestHandler_HandleMessage_TransientFailuresThenSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	sender := &scriptedSender{errs: []error{
		errors.New("timeout"),
		errors.New("timeout"),
		errors.New("timeout"),
	}}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), nil)

	msg := makeMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 1, "timeout").
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 2, "timeout").
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 3, "timeout").
		Return(nil)
	mockService.EXPECT().
		MarkDelivered(gomock.Any(), strategy, msg.ID, 4).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)

	assert.Equal(t, 4, sender.calls)
}

func TestHandler_HandleMessage_ExhaustsAttemptsThenFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	sender := &scriptedSender{errs: []error{
		errors.New("timeout 1"),
		errors.New("timeout 2"),
		errors.New("timeout 3"),
		errors.New("timeout 4"),
		errors.New("timeout 5"),
	}}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), nil)

	msg := makeMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 1, "timeout 1").
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 2, "timeout 2").
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 3, "timeout 3").
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 4, "timeout 4").
		Return(nil)
	mockService.EXPECT().
		MarkFailed(gomock.Any(), strategy, msg.ID, 5, "timeout 5").
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)

	// Attempt cap is absolute: no sixth send.
	assert.Equal(t, 5, sender.calls)
}

func TestHandler_HandleMessage_PermanentFailureFailsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	sender := &scriptedSender{errs: []error{
		notify.Permanent(errors.New("recipient rejected")),
	}}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), nil)

	msg := makeMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(nil)
	mockService.EXPECT().
		MarkFailed(gomock.Any(), strategy, msg.ID, 1, gomock.Any()).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)

	assert.Equal(t, 1, sender.calls)
}

func TestHandler_HandleMessage_NotClaimableSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	sender := &scriptedSender{}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), nil)

	msg := makeMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(jobrepo.ErrJobNotClaimable)

	h.HandleMessage(context.Background(), msg, strategy)

	assert.Equal(t, 0, sender.calls)
}

func TestHandler_HandleMessage_ResumesAttemptCountFromMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	sender := &scriptedSender{errs: []error{errors.New("timeout")}}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), nil)

	// A republished job carries the attempts already spent before restart.
	msg := makeMessage()
	msg.Attempts = 3
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(nil)
	mockService.EXPECT().
		RecordAttempt(gomock.Any(), msg.ID, 4, "timeout").
		Return(nil)
	mockService.EXPECT().
		MarkDelivered(gomock.Any(), strategy, msg.ID, 5).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)

	assert.Equal(t, 2, sender.calls)
}

func TestHandler_HandleMessage_AlertsOperatorOnTerminalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockjobService(ctrl)
	mockAlerter := mocks.NewMockOpsAlerter(ctrl)
	sender := &scriptedSender{errs: []error{
		notify.Permanent(errors.New("recipient rejected")),
	}}
	h := NewHandler(mockService, notify.NewTemplateRenderer(""), sender, deliveryPolicy(5), mockAlerter)

	msg := makeMessage()
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().
		Claim(gomock.Any(), strategy, msg.ID).
		Return(nil)
	mockService.EXPECT().
		MarkFailed(gomock.Any(), strategy, msg.ID, 1, gomock.Any()).
		Return(nil)
	mockAlerter.EXPECT().
		Alert(gomock.Any()).
		Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}
