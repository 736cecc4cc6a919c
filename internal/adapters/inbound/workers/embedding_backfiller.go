package workers

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/unimarket/semantic-search/internal/usecases"
)

// EmbeddingBackfiller is a runnable that periodically embeds active items
// whose embedding is still missing. It catches listings created while the
// subscriber was down and items whose event processing failed.
type EmbeddingBackfiller struct {
	Backfill            usecases.BackfillEmbeddings `resolve:""`
	Logger              *log.Logger                 `resolve:""`
	Interval            time.Duration               `config:"BACKFILL_INTERVAL" default:"1m"`
	BatchSize           int                         `config:"BACKFILL_BATCH_SIZE" default:"100"`
	workerExecutionChan chan struct{}
}

// Run starts the periodic backfill of missing embeddings.
func (b EmbeddingBackfiller) Run(ctx context.Context) error {
	b.Logger.Println("EmbeddingBackfiller: running...")
	ticker := time.NewTicker(b.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			processed, err := b.Backfill.Execute(ctx, b.BatchSize)
			if err != nil && !errors.Is(err, context.Canceled) {
				b.Logger.Printf("EmbeddingBackfiller: error processing batch: %v", err)
			}
			if err == nil && processed > 0 {
				b.Logger.Printf("EmbeddingBackfiller: embedded %d items", processed)
			}
			if b.workerExecutionChan != nil {
				b.workerExecutionChan <- struct{}{}
			}
		case <-ctx.Done():
			b.Logger.Println("EmbeddingBackfiller: stopping...")
			return nil
		}
	}
}
