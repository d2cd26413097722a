// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"vallit/config"

	"github.com/go-redis/redis/v8"
)

// ReminderQueueClient is the Redis client backing the reminder task queue.
var ReminderQueueClient *redis.Client

// InitRedis initializes the Redis client for the reminder queue.
func InitRedis() {
	ReminderQueueClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := ReminderQueueClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (reminder queue): %v", err)
	}
}

// GetReminderQueueClient returns the reminder queue client.
func GetReminderQueueClient() *redis.Client {
	if ReminderQueueClient == nil {
		InitRedis()
	}
	return ReminderQueueClient
}
