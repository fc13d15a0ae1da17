// Package redisstore keeps the short-lived storefront state in Redis: carts, stock counters
// with per-order reservations, and idempotency keys.
//
// Stock scripts receive every key they touch through KEYS. Reservations span several stock
// counters, so a Redis Cluster deployment needs those keys in one hash slot.
//
// Usage:
//
//	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	carts := redisstore.NewCartStore(client, 7*24*time.Hour)
//	stock := redisstore.NewStockService(client)
//	keys := redisstore.NewIdempotencyStore(client)
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	cartKeyPrefix      = "cart:"
	cartUpdateAttempts = 5
)

// CartStore implements ports.CartRepository. Every Save refreshes the expiry.
type CartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartStore(client *redis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

type cartDTO struct {
	Items      []lineItemDTO `json:"items"`
	CouponCode string        `json:"couponCode,omitempty"`
}

type lineItemDTO struct {
	ProductID string `json:"productId"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Stock     int    `json:"stock"`
}

// Get returns an empty cart for an unknown or expired cart identifier.
func (s *CartStore) Get(ctx context.Context, cartID string) (cart.Cart, error) {
	return loadCart(ctx, s.client, cartID)
}

// Update runs change inside WATCH/MULTI on the cart key and retries when another writer
// got there first.
func (s *CartStore) Update(
	ctx context.Context,
	cartID string,
	change func(cart.Cart) (cart.Cart, error),
) (cart.Cart, error) {
	key := cartKeyPrefix + cartID

	var updated cart.Cart
	txf := func(tx *redis.Tx) error {
		current, err := loadCart(ctx, tx, cartID)
		if err != nil {
			return err
		}

		next, err := change(current)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(cartFromDomain(next))
		if err != nil {
			return fmt.Errorf("encode cart %s: %w", cartID, err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, raw, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		updated = next
		return nil
	}

	for range cartUpdateAttempts {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return cart.Cart{}, err
		}
		return updated, nil
	}

	return cart.Cart{}, fmt.Errorf("update cart %s: %w", cartID, redis.TxFailedErr)
}

type stringGetter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func loadCart(ctx context.Context, rdb stringGetter, cartID string) (cart.Cart, error) {
	raw, err := rdb.Get(ctx, cartKeyPrefix+cartID).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("load cart %s: %w", cartID, err)
	}

	var dto cartDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return cart.Cart{}, fmt.Errorf("decode cart %s: %w", cartID, err)
	}
	return cartToDomain(dto)
}

func (s *CartStore) Save(ctx context.Context, cartID string, c cart.Cart) error {
	raw, err := json.Marshal(cartFromDomain(c))
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cartID, err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+cartID, raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart %s: %w", cartID, err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, cartID string) error {
	return s.client.Del(ctx, cartKeyPrefix+cartID).Err()
}

func cartFromDomain(c cart.Cart) cartDTO {
	items := c.Items()
	dto := cartDTO{Items: make([]lineItemDTO, 0, len(items)), CouponCode: c.CouponCode()}
	for _, item := range items {
		dto.Items = append(dto.Items, lineItemDTO{
			ProductID: item.ProductID(),
			Size:      item.Variant().Size,
			Color:     item.Variant().Color,
			UnitPrice: item.UnitPrice().String(),
			Quantity:  item.Quantity(),
			Stock:     item.Stock(),
		})
	}
	return dto
}

func cartToDomain(dto cartDTO) (cart.Cart, error) {
	items := make([]cart.LineItem, 0, len(dto.Items))
	for _, raw := range dto.Items {
		key, err := cart.NewItemKey(raw.ProductID, cart.Variant{Size: raw.Size, Color: raw.Color})
		if err != nil {
			return cart.Cart{}, err
		}
		price, err := kernel.MoneyFromString(raw.UnitPrice)
		if err != nil {
			return cart.Cart{}, err
		}
		item, err := cart.NewLineItem(key, price, raw.Quantity, raw.Stock)
		if err != nil {
			return cart.Cart{}, err
		}
		items = append(items, item)
	}
	return cart.RestoreCart(items, dto.CouponCode)
}
