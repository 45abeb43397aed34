// File: utils/cache.go
package utils

import (
	"context"
	"errors"
	"log"
	"time"

	"tourvia/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix keys the active-session record of each user.
const AuthCachePrefix = "auth:"

// ErrAuthSessionInvalid means the presented token does not match the
// registered session: it expired, was revoked, or a newer sign-in
// superseded it.
var ErrAuthSessionInvalid = errors.New("auth session revoked or superseded")

var (
	// SessionCacheClient holds in-flight booking submission sessions.
	SessionCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for authorization caching.
	AuthCacheClient *redis.Client
)

// InitSessionCache initializes the Redis client for booking submission sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionCacheClient returns the booking session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// AuthSessionCache tracks the active session token hash per user. One
// session per user: registering a new token supersedes the previous one,
// which then fails validation everywhere.
type AuthSessionCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewAuthSessionCache creates the session registry over the auth cache
// client. The TTL matches the session token lifetime.
func NewAuthSessionCache() *AuthSessionCache {
	return &AuthSessionCache{Client: GetAuthCacheClient(), TTL: 72 * time.Hour}
}

// Register records the token hash as the user's active session.
func (a *AuthSessionCache) Register(ctx context.Context, uid, tokenHash string) error {
	return a.Client.Set(ctx, AuthCachePrefix+uid, tokenHash, a.TTL).Err()
}

// Validate compares the presented token hash against the registered
// session and refreshes the TTL on a match.
func (a *AuthSessionCache) Validate(ctx context.Context, uid, tokenHash string) error {
	stored, err := a.Client.Get(ctx, AuthCachePrefix+uid).Result()
	if err == redis.Nil {
		return ErrAuthSessionInvalid
	}
	if err != nil {
		return err
	}
	if stored != tokenHash {
		return ErrAuthSessionInvalid
	}
	a.Client.Expire(ctx, AuthCachePrefix+uid, a.TTL)
	return nil
}

// Revoke drops the user's active session. Subsequent requests with any
// previously issued token are rejected.
func (a *AuthSessionCache) Revoke(ctx context.Context, uid string) error {
	return a.Client.Del(ctx, AuthCachePrefix+uid).Err()
}
