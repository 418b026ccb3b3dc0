package rdb

import (
	"context"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init(uri string) error {
	// Get Redis options
	rdbOpts, err := redis.ParseURL(uri)
	if err != nil {
		return err
	}

	// Create Redis client
	Client = redis.NewClient(rdbOpts)

	// Ping Redis cluster
	if err := Client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	return nil
}

// Publish sends an already-marshaled payload on a channel.
func Publish(channel string, payload []byte) error {
	return Client.Publish(context.TODO(), channel, payload).Err()
}

// Subscribe opens a pub/sub subscription on the given channels.
func Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return Client.Subscribe(ctx, channels...)
}
