package redisstore

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
)

func TestReserveKeys(t *testing.T) {
	orderID := kernel.NewUUID()

	keys, args := reserveKeys(orderID, []ports.StockLine{
		{ItemKey: "coat-1::", Quantity: 1},
		{ItemKey: "dress-1:M:black", Quantity: 2},
	})

	assert.Equal(t, []string{
		"reservation:" + orderID.String(),
		"stock:coat-1::",
		"stock:dress-1:M:black",
	}, keys)
	assert.Equal(t, []any{1, 2, "coat-1::", "dress-1:M:black"}, args)
}

func TestReleaseKeys(t *testing.T) {
	orderID := kernel.NewUUID()

	keys, args := releaseKeys(orderID, []string{"dress-1:M:black", "coat-1::"})

	assert.Equal(t, []string{
		"reservation:" + orderID.String(),
		"stock:dress-1:M:black",
		"stock:coat-1::",
	}, keys, "every stock counter the script writes is declared")
	assert.Equal(t, []any{"dress-1:M:black", "coat-1::"}, args)
}
