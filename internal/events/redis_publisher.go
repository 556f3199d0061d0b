package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const planChannel = "routes:generated"

// RedisPublisher implements Publisher over Redis Pub/Sub.
type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(url string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis publisher: parse url: %w", err)
	}

	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis publisher: verify connection: %w", err)
	}

	return &RedisPublisher{rdb: rdb}, nil
}

func (p *RedisPublisher) PublishPlanGenerated(ctx context.Context, evt PlanGenerated) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("publish plan generated: marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := p.rdb.Publish(ctx, planChannel, data).Err(); err != nil {
		return fmt.Errorf("publish plan generated: publish to %q: %w", planChannel, err)
	}

	return nil
}

func (p *RedisPublisher) Close() error { return p.rdb.Close() }
