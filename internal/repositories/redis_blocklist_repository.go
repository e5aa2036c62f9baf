package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisTokenBlocklist - общий блоклист для нескольких инстансов.
// Ключ живёт не дольше refresh-токена: к моменту вытеснения сам токен
// уже истёк, и отзыв теряет смысл.
type RedisTokenBlocklist struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenBlocklist(client *redis.Client, ttl time.Duration) *RedisTokenBlocklist {
	return &RedisTokenBlocklist{client: client, ttl: ttl}
}

func blocklistKey(jti string) string {
	return fmt.Sprintf("revoked_jti:%s", jti)
}

func (b *RedisTokenBlocklist) Revoke(ctx context.Context, jti string) error {
	return b.client.Set(ctx, blocklistKey(jti), "revoked", b.ttl).Err()
}

func (b *RedisTokenBlocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	err := b.client.Get(ctx, blocklistKey(jti)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
