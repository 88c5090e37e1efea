package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrBadAmount     = errors.New("amount is not a valid decimal")
	ErrTotalMismatch = errors.New("final value does not match sum of items")
)

// ValidateCheckout checks the arithmetic of a checkout request: every
// amount parses as a decimal, quantities are positive, and the supplied
// final value equals the sum of quantity times unit price. Reward
// amounts come from the client and are only checked for sign.
func ValidateCheckout(req *CheckoutRequest) error {
	final, err := decimal.NewFromString(req.FinalValue)
	if err != nil {
		return fmt.Errorf("%w: final_value %q", ErrBadAmount, req.FinalValue)
	}
	if req.CoinsSpent < 0 || req.FinalCoinBalance < 0 || req.PointsEarned < 0 {
		return errors.New("reward amounts must be non-negative")
	}

	sum := decimal.Zero
	for i, it := range req.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", i)
		}
		price, err := decimal.NewFromString(it.UnitPrice)
		if err != nil {
			return fmt.Errorf("%w: item %d unit_price %q", ErrBadAmount, i, it.UnitPrice)
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	if !final.Equal(sum) {
		return fmt.Errorf("%w: got %s, items sum to %s", ErrTotalMismatch, final, sum)
	}
	return nil
}
