package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	DefaultExpiredOrdersBatchSize = 100
	maxExpiredOrdersBatchSize     = 1000
)

var ErrCancelExpiredOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredOrdersCommand must be created via NewCancelExpiredOrdersCommand constructor",
)

// CancelExpiredOrdersCommand cancels unpaid orders older than the payment timeout.
type CancelExpiredOrdersCommand struct { //nolint:recvcheck //using for validation
	paymentTimeout time.Duration
	batchSize      int

	guard guard.ConstructorGuard
}

func NewCancelExpiredOrdersCommand(paymentTimeout time.Duration, batchSize int) (CancelExpiredOrdersCommand, error) {
	var timeoutErr, batchErr error
	if paymentTimeout <= 0 {
		timeoutErr = errs.NewValueIsOutOfRangeError("paymentTimeout", paymentTimeout, "1ns", "unbounded")
	}
	if batchSize < 1 || batchSize > maxExpiredOrdersBatchSize {
		batchErr = errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, maxExpiredOrdersBatchSize)
	}
	if err := errors.Join(timeoutErr, batchErr); err != nil {
		return CancelExpiredOrdersCommand{}, err
	}

	return CancelExpiredOrdersCommand{
		paymentTimeout: paymentTimeout,
		batchSize:      batchSize,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CancelExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredOrdersCommandIsNotConstructed)
}

func (c CancelExpiredOrdersCommand) PaymentTimeout() time.Duration {
	return c.paymentTimeout
}

func (c CancelExpiredOrdersCommand) BatchSize() int {
	return c.batchSize
}
