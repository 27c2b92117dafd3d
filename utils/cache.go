// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"clubhub/config"

	"github.com/go-redis/redis/v8"
)

// ReminderGuardClient is the dedicated client for reminder dedup records.
var ReminderGuardClient *redis.Client

// InitReminderGuardCache initializes the Redis client for reminder dedup records.
func InitReminderGuardCache() {
	ReminderGuardClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderGuardDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := ReminderGuardClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Reminder Guard): %v", err)
	}
}

// GetReminderGuardClient returns the Redis client for reminder dedup records.
func GetReminderGuardClient() *redis.Client {
	if ReminderGuardClient == nil {
		InitReminderGuardCache()
	}
	return ReminderGuardClient
}
