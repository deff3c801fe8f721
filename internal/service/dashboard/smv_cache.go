package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hangerline/hangerline-backend-go/internal/domain/production"
)

// SMVCache is a RecordStore that serves standard-minute records from memory.
// Refresh reloads them; until the first successful refresh reads go to the store.
type SMVCache struct {
	production.RecordStore

	mu          sync.RWMutex
	records     []production.StandardMinuteRecord
	loaded      bool
	refreshedAt time.Time
}

func NewSMVCache(store production.RecordStore) *SMVCache {
	return &SMVCache{RecordStore: store}
}

// Refresh reloads the table. A failed reload keeps the previous records.
func (c *SMVCache) Refresh(ctx context.Context) error {
	res := c.RecordStore.QuerySMVRecords(ctx)
	if res.Failed() {
		if last := c.RefreshedAt(); !last.IsZero() {
			slog.Warn("SMV refresh failed, serving previous table", "refreshed_at", last, "error", res.Err)
		}
		return res.Err
	}
	c.store(res.Rows)
	return nil
}

func (c *SMVCache) store(rows []production.StandardMinuteRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = rows
	c.loaded = true
	c.refreshedAt = time.Now()
	slog.Debug("SMV table refreshed", "records", len(rows))
}

// RefreshedAt reports when the table was last loaded; zero before the first load.
func (c *SMVCache) RefreshedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshedAt
}

// QuerySMVRecords implements production.RecordStore.
func (c *SMVCache) QuerySMVRecords(ctx context.Context) production.QueryResult[production.StandardMinuteRecord] {
	c.mu.RLock()
	if c.loaded {
		rows := c.records
		c.mu.RUnlock()
		return production.Ok(rows)
	}
	c.mu.RUnlock()

	res := c.RecordStore.QuerySMVRecords(ctx)
	if !res.Failed() {
		c.store(res.Rows)
	}
	return res
}
