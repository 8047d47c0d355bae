package customer

import "errors"

var (
	ErrNegativeCredits = errors.New("credits cannot be negative")
	ErrInvalidShop     = errors.New("shop domain cannot be empty")
	ErrInvalidExternal = errors.New("external customer id cannot be empty")
)

// Credits is a customer's wallet balance. It can never be negative; any debit
// that would cross zero must fail before it is applied.
type Credits int32

func NewCredits(amount int32) (Credits, error) {
	if amount < 0 {
		return 0, ErrNegativeCredits
	}
	return Credits(amount), nil
}

func (c Credits) Int32() int32 {
	return int32(c)
}

// CanDebit reports whether removing n credits keeps the balance non-negative.
func (c Credits) CanDebit(n int32) bool {
	return n >= 0 && int32(c) >= n
}
