package workers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/usecases"
)

// ItemEventSubscriber consumes marketplace item lifecycle events from Pub/Sub
// and triggers embedding generation for newly created listings.
type ItemEventSubscriber struct {
	Logger              *log.Logger                    `resolve:""`
	Client              *pubsub.Client                 `resolve:""`
	Interval            time.Duration                  `config:"ITEM_EVENTS_BATCH_INTERVAL" default:"3s"`
	BatchSize           int                            `config:"ITEM_EVENTS_BATCH_SIZE" default:"50"`
	SubscriptionID      string                         `config:"ITEM_EVENTS_SUBSCRIPTION_ID"`
	GenerateEmbedding   usecases.GenerateItemEmbedding `resolve:""`
	workerExecutionChan chan struct{}
}

// Run starts the item event subscriber worker.
func (s ItemEventSubscriber) Run(ctx context.Context) error {
	s.Logger.Println("ItemEventSubscriber: running...")

	if s.BatchSize <= 0 {
		s.BatchSize = 50
	}
	if s.Interval <= 0 {
		s.Interval = 3 * time.Second
	}

	eventCh := make(chan *pubsub.Message, s.BatchSize*2)
	subscriberInitErrCh := make(chan error, 1)

	// 1. Receive messages in background (blocking call).
	go func() {
		err := s.Client.Subscriber(s.SubscriptionID).Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
			select {
			case eventCh <- msg:
				// Ack later, after batching.
			case <-ctx.Done():
				msg.Nack()
			}
		})

		if err != nil {
			subscriberInitErrCh <- err
		}
	}()

	// 2. Batch + flush loop.
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	var batch []*pubsub.Message

	for {
		select {
		case <-ctx.Done():
			s.Logger.Println("ItemEventSubscriber: stopped")
			return nil

		case err := <-subscriberInitErrCh:
			return err

		case msg := <-eventCh:
			batch = append(batch, msg)
			if len(batch) >= s.BatchSize {
				s.flush(ctx, batch)
				batch = nil
			}

		case <-ticker.C:
			if len(batch) > 0 {
				s.flush(ctx, batch)
				batch = nil
			}
		}
	}
}

// itemEventBatch keeps every Pub/Sub message delivered for one item so a
// redelivered or duplicated event results in a single embedding generation.
type itemEventBatch struct {
	Messages []*pubsub.Message
}

// flush processes one batch of Pub/Sub messages.
func (s ItemEventSubscriber) flush(ctx context.Context, batch []*pubsub.Message) {
	s.Logger.Printf("ItemEventSubscriber: processing batch size=%d", len(batch))

	if s.workerExecutionChan != nil {
		s.workerExecutionChan <- struct{}{}
	}

	items := make(map[uuid.UUID]itemEventBatch)
	for _, msg := range batch {
		var event domain.ItemEvent
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			s.Logger.Printf("ItemEventSubscriber: failed to decode event payload: %v", err)
			msg.Nack()
			continue
		}

		// Ignore unrelated events that may be delivered to this subscription.
		if event.Type != domain.EventType_ITEM_CREATED {
			msg.Ack()
			continue
		}

		itemBatch := items[event.ItemID]
		itemBatch.Messages = append(itemBatch.Messages, msg)
		items[event.ItemID] = itemBatch
	}

	for itemID, itemBatch := range items {
		_, err := s.GenerateEmbedding.Execute(ctx, itemID)
		if err != nil {
			// Retrying cannot help when the listing no longer exists.
			var notFound *domain.NotFoundErr
			if errors.As(err, &notFound) {
				s.Logger.Printf("ItemEventSubscriber: skipping item %s: %v", itemID, err)
				for _, message := range itemBatch.Messages {
					message.Ack()
				}
				continue
			}

			for _, message := range itemBatch.Messages {
				message.Nack()
			}
			if !errors.Is(err, context.Canceled) {
				s.Logger.Printf("ItemEventSubscriber: %v", err)
			}
			continue
		}

		for _, message := range itemBatch.Messages {
			message.Ack()
		}
	}
}
