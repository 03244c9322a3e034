package configs

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("failed to connect to redis: ", err)
	}
	return client
}
