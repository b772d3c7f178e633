package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the Redis connection that backs durable cart storage and
// the opaque credential store.
type Client struct {
	rdb     *redis.Client
	cartTTL time.Duration
}

func Initialize(redisURL string, cartTTL time.Duration) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb, cartTTL: cartTTL}, nil
}

// Cart storage. The full line list is written as one JSON value under a
// fixed per-cart key; the cart package owns the encoding.

func (c *Client) SaveCart(cartID string, data []byte) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "cart:"+cartID, data, c.cartTTL).Err()
}

func (c *Client) LoadCart(cartID string) ([]byte, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+cartID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	return val, nil
}

func (c *Client) DeleteCart(cartID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+cartID).Err()
}

// Credential store. The storefront treats auth as opaque: a bearer token
// and an admin flag written by the login flow, read when building
// backend requests.

func (c *Client) SetCredentials(token string, isAdmin bool) error {
	ctx := context.Background()
	if err := c.rdb.Set(ctx, "auth:token", token, 0).Err(); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return c.rdb.Set(ctx, "auth:is_admin", isAdmin, 0).Err()
}

func (c *Client) GetToken() (string, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "auth:token").Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get token: %w", err)
	}
	return val, nil
}

func (c *Client) IsAdmin() (bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "auth:is_admin").Bool()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get admin flag: %w", err)
	}
	return val, nil
}

func (c *Client) ClearCredentials() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "auth:token", "auth:is_admin").Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
