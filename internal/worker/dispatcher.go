package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/iskandar/reply-notifier/internal/model"
	"github.com/iskandar/reply-notifier/internal/rabbitmq/queue"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/worker/mock.go -package=mocks

type jobQueue interface {
	Consume(ctx context.Context, out chan<- queue.JobMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.JobMessage, strategy retry.Strategy)
}

type jobService interface {
	GetJobStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (string, error)
	RepublishStale(ctx context.Context, strategy retry.Strategy, pendingOlderThan, sendingOlderThan time.Duration, limit int) (int, error)
}

const (
	stalePendingAfter = time.Minute

	// A sending row is only abandoned once the slowest legitimate delivery
	// (five attempts with backoff) could have finished.
	staleSendingAfter = 10 * time.Minute

	staleSweepSize = 100
)

// Dispatcher runs the pool of delivery workers. Workers are independent;
// ordering across recipients is not promised, but each job is delivered by
// a single worker at a time thanks to the claim in the handler.
type Dispatcher struct {
	queue   jobQueue
	handler messageHandler
	service jobService
}

func NewDispatcher(q jobQueue, h messageHandler, s jobService) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
		service: s,
	}
}

func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.JobMessage, workerCount*10)

	// Crash recovery: pending rows whose queue message was lost and sending
	// rows abandoned mid-delivery get republished before consumption starts.
	if n, err := d.service.RepublishStale(ctx, strategy, stalePendingAfter, staleSendingAfter, staleSweepSize); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to republish stale jobs")
	} else if n > 0 {
		zlog.Logger.Info().Int("count", n).Msg("republished stale jobs")
	}

	go func() {
		if err := d.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					status, err := d.service.GetJobStatusByID(ctx, strategy, msg.ID)
					if err != nil {
						zlog.Logger.Printf("failed to get status for %s: %v", msg.ID, err)
						continue
					}

					// Duplicate messages for finished jobs are dropped here;
					// at-least-once delivery makes them possible.
					if status == model.JobStatusDelivered || status == model.JobStatusFailed {
						zlog.Logger.Printf("job %s already %s, skipping", msg.ID, status)
						continue
					}

					d.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("dispatcher stopped")
}
