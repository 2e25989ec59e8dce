package cache

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is nil when Redis is unreachable; every helper treats a nil client
// as a cache miss so the API keeps working without Redis.
var Client *redis.Client

const (
	ProductListKey   = "products:all"
	ProductKeyPrefix = "product:"
	ProductTTL       = 5 * time.Minute
)

func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("WARNING: Redis unavailable at %s, caching disabled: %v", addr, err)
		Client = nil
		return
	}
	Client = client
	log.Printf("Redis connected at %s", addr)
}

// GetJSON reports whether key was present and decoded into dest.
func GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if Client == nil {
		return false
	}
	data, err := Client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

// SetJSON writes in the background; cache population never blocks a request.
func SetJSON(key string, value interface{}, ttl time.Duration) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	go Client.Set(context.Background(), key, data, ttl)
}

// InvalidateProducts drops the list key and the per-product key of every id
// given. Called after every product mutation.
func InvalidateProducts(productIDs ...string) {
	if Client == nil {
		return
	}
	go Client.Del(context.Background(), invalidationKeys(productIDs)...)
}

func invalidationKeys(productIDs []string) []string {
	keys := []string{ProductListKey}
	for _, id := range productIDs {
		if id != "" {
			keys = append(keys, ProductKeyPrefix+id)
		}
	}
	return keys
}
