package data

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// StreamNotifier publishes governance events to the redis event
// stream. Fire and forget: failures are logged and never surface to
// the operation that triggered them.
type StreamNotifier struct {
	Rdb *redis.Client
}

func (n StreamNotifier) Notify(ctx context.Context, event string, payload map[string]interface{}) {
	if n.Rdb == nil {
		return
	}
	values := map[string]interface{}{"event": event, "ts": time.Now().UTC().Unix()}
	for k, v := range payload {
		values[k] = v
	}
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := PublishEvent(pubCtx, n.Rdb, values); err != nil {
		log.Printf("notify %s: %v", event, err)
	}
}
