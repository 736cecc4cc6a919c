package workers

import (
	"context"
	"errors"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/unimarket/semantic-search/internal/domain"
	"github.com/unimarket/semantic-search/internal/usecases/mocks"
)

// TestItemEventSubscriber_Run verifies event decoding, per-item coalescing and
// embedding generation trigger behavior.
func TestItemEventSubscriber_Run(t *testing.T) {
	firstItemID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	secondItemID := uuid.MustParse("223e4567-e89b-12d3-a456-426614174001")

	tests := map[string]struct {
		payloads      [][]byte
		setupMocks    func(*mocks.MockGenerateItemEmbedding, *[]uuid.UUID)
		expectedItems []uuid.UUID
	}{
		"embeds-each-created-item": {
			payloads: [][]byte{
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: firstItemID,
				}),
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: secondItemID,
				}),
			},
			setupMocks: func(m *mocks.MockGenerateItemEmbedding, received *[]uuid.UUID) {
				m.EXPECT().
					Execute(mock.Anything, mock.Anything).
					Run(func(_ context.Context, itemID uuid.UUID) {
						*received = append(*received, itemID)
					}).
					Return(domain.Vector{1, 0}, nil).
					Times(2)
			},
			expectedItems: []uuid.UUID{firstItemID, secondItemID},
		},
		"coalesces-duplicate-events-per-item": {
			payloads: [][]byte{
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: firstItemID,
				}),
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: firstItemID,
				}),
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: firstItemID,
				}),
			},
			setupMocks: func(m *mocks.MockGenerateItemEmbedding, received *[]uuid.UUID) {
				m.EXPECT().
					Execute(mock.Anything, firstItemID).
					Run(func(_ context.Context, itemID uuid.UUID) {
						*received = append(*received, itemID)
					}).
					Return(domain.Vector{1, 0}, nil).
					Once()
			},
			expectedItems: []uuid.UUID{firstItemID},
		},
		"invalid-payload": {
			payloads: [][]byte{
				[]byte(`{"type"`),
			},
			setupMocks:    func(m *mocks.MockGenerateItemEmbedding, received *[]uuid.UUID) {},
			expectedItems: nil,
		},
		"ignore-unrelated-event-type": {
			payloads: [][]byte{
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType("ITEM.UPDATED"),
					ItemID: firstItemID,
				}),
			},
			setupMocks:    func(m *mocks.MockGenerateItemEmbedding, received *[]uuid.UUID) {},
			expectedItems: nil,
		},
		"vanished-item-is-acked-not-retried": {
			payloads: [][]byte{
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: firstItemID,
				}),
			},
			setupMocks: func(m *mocks.MockGenerateItemEmbedding, received *[]uuid.UUID) {
				m.EXPECT().
					Execute(mock.Anything, firstItemID).
					Return(nil, domain.NewNotFoundErr("item not found")).
					Once()
			},
			expectedItems: nil,
		},
		"generation-error-does-not-stop-worker": {
			payloads: [][]byte{
				itemEventPayload(t, domain.ItemEvent{
					Type:   domain.EventType_ITEM_CREATED,
					ItemID: firstItemID,
				}),
			},
			setupMocks: func(m *mocks.MockGenerateItemEmbedding, received *[]uuid.UUID) {
				m.EXPECT().
					Execute(mock.Anything, firstItemID).
					Return(nil, errors.New("database error"))
			},
			expectedItems: nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := t.Context()
			subscriptionID := "item-subscription-" + name
			client, topicName := setupPubSubServer(
				t,
				ctx,
				"item-topic-"+name,
				subscriptionID,
			)

			var receivedItems []uuid.UUID
			generateEmbedding := mocks.NewMockGenerateItemEmbedding(t)
			tt.setupMocks(generateEmbedding, &receivedItems)

			signalChan := make(chan struct{}, 10)
			subscriber := ItemEventSubscriber{
				Logger:              log.Default(),
				Client:              client,
				Interval:            5 * time.Second,
				BatchSize:           max(1, len(tt.payloads)),
				SubscriptionID:      subscriptionID,
				GenerateEmbedding:   generateEmbedding,
				workerExecutionChan: signalChan,
			}

			cancel, doneChan := run(t, ctx, subscriber)
			err := publishMessages(ctx, client, topicName, tt.payloads)
			assert.NoError(t, err)

			waitForBatchSignals(t, signalChan, 1, 1*time.Second)
			cancel()
			waitRunnableStop(t, doneChan)

			assert.ElementsMatch(t, tt.expectedItems, receivedItems)
		})
	}
}
