package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode  = errors.New("invalid coupon code format")
	ErrInvalidCreditGrant = errors.New("credit amount must be positive")
	ErrInvalidMaxUses     = errors.New("max uses must be positive when set")
)

// Codes are stored uppercase; input is normalized before the lookup.
var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

type Code string

func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// CreditGrant is the number of credits a redemption adds to the wallet.
type CreditGrant int32

func NewCreditGrant(amount int32) (CreditGrant, error) {
	if amount <= 0 {
		return 0, ErrInvalidCreditGrant
	}
	return CreditGrant(amount), nil
}

func (g CreditGrant) Int32() int32 {
	return int32(g)
}
