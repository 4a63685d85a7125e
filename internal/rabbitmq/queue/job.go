package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName  = "notify-exchange"
	MainQueueName = "notify-jobs"
	DLQName       = "notify-jobs-dlq"
	RoutingKey    = "notify-job"
)

// JobMessage is the wire form of a notification job handed from the write
// path to the dispatch workers. It carries everything needed to render and
// deliver without re-reading the comments table.
type JobMessage struct {
	ID               uuid.UUID `json:"id"`
	RecipientAddress string    `json:"recipient_address"`
	ContentItemID    uuid.UUID `json:"content_item_id"`
	ReplyExcerpt     string    `json:"reply_excerpt"`
	ParentExcerpt    string    `json:"parent_excerpt"`
	Attempts         int       `json:"attempts"`
}

type JobQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

func NewJobQueue(ch *rabbitmq.Channel) (*JobQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &JobQueue{Publisher: pub, Consumer: cons}, nil
}

func (q *JobQueue) Publish(msg JobMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

func (q *JobQueue) Consume(ctx context.Context, out chan<- JobMessage, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forwardDecoded(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// forwardDecoded decodes raw deliveries and forwards them until the context
// ends or the source closes. Undecodable payloads are logged and dropped.
func forwardDecoded(ctx context.Context, in <-chan []byte, out chan<- JobMessage) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			var msg JobMessage
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal message")
				continue
			}

			// Workers stop on shutdown; without this the send would
			// block forever on an undrained channel.
			select {
			case <-ctx.Done():
				return
			case out <- msg:
			}
		}
	}
}
