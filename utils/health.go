package utils

import (
	"context"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-redis/redis/v8"
	"google.golang.org/api/iterator"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Firestore bool      `json:"firestore"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClients []*redis.Client, fsClient *firestore.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			var redisHealth []bool

			for _, client := range redisClients {
				err := client.Ping(ctx).Err()
				redisHealth = append(redisHealth, err == nil)
			}

			mu.Lock()
			currentHealth = HealthStatus{
				Firestore: pingFirestore(ctx, fsClient),
				Redis:     redisHealth,
				CheckedAt: time.Now(),
			}
			mu.Unlock()
		}
	}()
}

// pingFirestore issues a minimal read; an empty result still proves connectivity.
func pingFirestore(ctx context.Context, client *firestore.Client) bool {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	it := client.Collection("healthz").Limit(1).Documents(ctx)
	defer it.Stop()
	_, err := it.Next()
	return err == nil || err == iterator.Done
}
