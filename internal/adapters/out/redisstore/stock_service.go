package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	stockKeyPrefix       = "stock:"
	reservationKeyPrefix = "reservation:"
)

// reserveScript checks every line before taking anything, so a reservation is all or nothing.
// KEYS: reservation hash, then one stock key per line.
// ARGV: the n quantities, then the n item keys.
// Returns {0, 0} on success or {line index from 1, units available} for the first short line.
var reserveScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
	return {0, 0}
end

local n = #KEYS - 1
for i = 1, n do
	local available = tonumber(redis.call('GET', KEYS[i + 1]) or '0')
	if available < tonumber(ARGV[i]) then
		return {i, available}
	end
end

for i = 1, n do
	redis.call('DECRBY', KEYS[i + 1], ARGV[i])
	redis.call('HSET', KEYS[1], ARGV[n + i], ARGV[i])
end

return {0, 0}
`)

// releaseScript returns every reserved line to stock and drops the reservation.
// KEYS: reservation hash, then one stock key per reserved item.
// ARGV: the item keys, in the order of their stock keys.
// Items no longer in the hash are skipped, so a release racing another release adds nothing.
var releaseScript = redis.NewScript(`
local released = 0
for i = 1, #ARGV do
	local units = redis.call('HGET', KEYS[1], ARGV[i])
	if units then
		redis.call('INCRBY', KEYS[i + 1], units)
		released = released + 1
	end
end
redis.call('DEL', KEYS[1])
return released
`)

// StockService implements ports.StockService on Redis counters, one per item key.
//
// A reservation is a hash "reservation:<orderId>" of item key to units taken, written in the
// same script that decrements the counters. Releasing it adds the units back and deletes the
// hash, which makes a second release a no-op.
type StockService struct {
	client *redis.Client
}

func NewStockService(client *redis.Client) *StockService {
	return &StockService{client: client}
}

// Available returns 0 for an item key that was never stocked.
func (s *StockService) Available(ctx context.Context, itemKey string) (int, error) {
	n, err := s.client.Get(ctx, stockKeyPrefix+itemKey).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read stock %s: %w", itemKey, err)
	}
	return max(n, 0), nil
}

// Reserve merges lines with the same item key before reserving. Reserving again for an
// order that already holds a reservation does nothing.
func (s *StockService) Reserve(ctx context.Context, orderID kernel.UUID, lines []ports.StockLine) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	merged, err := mergeLines(lines)
	if err != nil {
		return err
	}
	if len(merged) == 0 {
		return nil
	}

	keys, args := reserveKeys(orderID, merged)
	result, err := reserveScript.Run(ctx, s.client, keys, args...).Int64Slice()
	if err != nil {
		return fmt.Errorf("reserve stock for order %s: %w", orderID, err)
	}
	if len(result) != 2 {
		return fmt.Errorf("reserve stock for order %s: unexpected reply %v", orderID, result)
	}

	if short := result[0]; short > 0 {
		line := merged[short-1]
		return errs.NewStockExceededError(line.ItemKey, line.Quantity, int(result[1]))
	}
	return nil
}

func (s *StockService) Release(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	key := reservationKeyPrefix + orderID.String()
	itemKeys, err := s.client.HKeys(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("read reservation of order %s: %w", orderID, err)
	}
	if len(itemKeys) == 0 {
		return nil
	}

	keys, args := releaseKeys(orderID, itemKeys)
	if err = releaseScript.Run(ctx, s.client, keys, args...).Err(); err != nil {
		return fmt.Errorf("release stock of order %s: %w", orderID, err)
	}
	return nil
}

func (s *StockService) SetStock(ctx context.Context, itemKey string, quantity int) error {
	if strings.TrimSpace(itemKey) == "" {
		return errs.NewValueIsRequiredError("itemKey")
	}
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return s.client.Set(ctx, stockKeyPrefix+itemKey, quantity, 0).Err()
}

// reserveKeys lays out the script input for reserveScript.
func reserveKeys(orderID kernel.UUID, lines []ports.StockLine) ([]string, []any) {
	keys := make([]string, 0, len(lines)+1)
	args := make([]any, 0, 2*len(lines))
	keys = append(keys, reservationKeyPrefix+orderID.String())
	for _, line := range lines {
		keys = append(keys, stockKeyPrefix+line.ItemKey)
		args = append(args, line.Quantity)
	}
	for _, line := range lines {
		args = append(args, line.ItemKey)
	}
	return keys, args
}

func releaseKeys(orderID kernel.UUID, itemKeys []string) ([]string, []any) {
	keys := make([]string, 0, len(itemKeys)+1)
	args := make([]any, 0, len(itemKeys))
	keys = append(keys, reservationKeyPrefix+orderID.String())
	for _, itemKey := range itemKeys {
		keys = append(keys, stockKeyPrefix+itemKey)
		args = append(args, itemKey)
	}
	return keys, args
}

func mergeLines(lines []ports.StockLine) ([]ports.StockLine, error) {
	merged := make([]ports.StockLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line.ItemKey) == "" {
			return nil, errs.NewValueIsRequiredError("itemKey")
		}
		if line.Quantity < 1 {
			return nil, errs.NewInvalidQuantityError(line.Quantity)
		}
		if i, ok := index[line.ItemKey]; ok {
			merged[i].Quantity += line.Quantity
			continue
		}
		index[line.ItemKey] = len(merged)
		merged = append(merged, line)
	}
	return merged, nil
}
