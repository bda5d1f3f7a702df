package jobs

import (
	"context"
	"time"

	"fleetdesk/cmd/internal/metrics"

	"github.com/labstack/gommon/log"
)

const DefaultInventoryInterval = 1 * time.Minute

// RecordCounter counts the stored records of one entity kind.
type RecordCounter interface {
	Count(ctx context.Context) (int64, error)
}

type InventoryReporter struct {
	counters map[string]RecordCounter
	metrics  *metrics.Metrics
	interval time.Duration
}

func NewInventoryReporter(counters map[string]RecordCounter, m *metrics.Metrics, interval time.Duration) *InventoryReporter {
	if interval <= 0 {
		interval = DefaultInventoryInterval
	}
	return &InventoryReporter{counters: counters, metrics: m, interval: interval}
}

func (r *InventoryReporter) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info("Inventory reporter cron started")
	r.report(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping inventory reporter...")
			return
		case <-ticker.C:
			r.report(ctx)
		}
	}
}

func (r *InventoryReporter) report(ctx context.Context) {
	for kind, counter := range r.counters {
		count, err := counter.Count(ctx)
		if err != nil {
			log.Errorf("Inventory: failed to count %s records: %v", kind, err)
			continue
		}
		r.metrics.SetInventory(kind, count)
	}
	log.Debugf("Inventory: refreshed counts for %d kinds", len(r.counters))
}
