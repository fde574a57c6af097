package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// DeckStore persists the ranked deck per viewer: the ordered candidate ids
// plus the current-position cursor. The ranking engine itself is stateless;
// this is the caller-side persistence of its output. Entries are dropped
// whenever any ranking input changes so the next read recomputes.
type DeckStore struct {
	Client *redis.Client
	TTL    time.Duration
}

const deckTTL = 30 * time.Minute

// InitializeRedisClient initializes the Redis client from REDIS_ADDR
func InitializeRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

func NewDeckStore(client *redis.Client) *DeckStore {
	return &DeckStore{Client: client, TTL: deckTTL}
}

func deckKey(viewerID string) string { return "deck:" + viewerID }
func cursorKey(viewerID string) string { return "deck:" + viewerID + ":cursor" }

// Save replaces the viewer's deck with a freshly ranked order and resets the
// cursor to the top.
func (d *DeckStore) Save(ctx context.Context, viewerID string, candidateIDs []string) error {
	pipe := d.Client.TxPipeline()
	pipe.Del(ctx, deckKey(viewerID), cursorKey(viewerID))
	if len(candidateIDs) > 0 {
		values := make([]interface{}, len(candidateIDs))
		for i, id := range candidateIDs {
			values[i] = id
		}
		pipe.RPush(ctx, deckKey(viewerID), values...)
		pipe.Expire(ctx, deckKey(viewerID), d.TTL)
	}
	pipe.Set(ctx, cursorKey(viewerID), 0, d.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save deck for %s: %w", viewerID, err)
	}
	return nil
}

// Load returns the stored deck order and cursor. A missing deck returns an
// empty order and no error; callers re-rank in that case.
func (d *DeckStore) Load(ctx context.Context, viewerID string) ([]string, int, error) {
	ids, err := d.Client.LRange(ctx, deckKey(viewerID), 0, -1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load deck for %s: %w", viewerID, err)
	}
	if len(ids) == 0 {
		return nil, 0, nil
	}

	cursor, err := d.Client.Get(ctx, cursorKey(viewerID)).Int()
	if err == redis.Nil {
		cursor = 0
	} else if err != nil {
		return nil, 0, fmt.Errorf("failed to load deck cursor for %s: %w", viewerID, err)
	}
	return ids, cursor, nil
}

// Advance moves the cursor one position forward and returns its new value.
func (d *DeckStore) Advance(ctx context.Context, viewerID string) (int, error) {
	cursor, err := d.Client.Incr(ctx, cursorKey(viewerID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to advance deck cursor for %s: %w", viewerID, err)
	}
	return int(cursor), nil
}

// Invalidate drops the viewer's deck. Best effort: a cache miss only costs a
// re-rank, so failures are logged, not returned.
func (d *DeckStore) Invalidate(ctx context.Context, viewerID string) {
	if err := d.Client.Del(ctx, deckKey(viewerID), cursorKey(viewerID)).Err(); err != nil {
		log.Printf("⚠️ Failed to invalidate deck for %s: %v", viewerID, err)
	}
}
