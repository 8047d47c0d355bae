package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Ledger errors
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrCustomerNotFound    = errors.New("customer not found")

	// Coupon errors
	ErrCouponNotFound        = errors.New("coupon not found")
	ErrCouponInactive        = errors.New("coupon is inactive")
	ErrCouponExpired         = errors.New("coupon has expired")
	ErrCouponExhausted       = errors.New("coupon usage limit reached")
	ErrCouponAlreadyRedeemed = errors.New("coupon already redeemed")
	ErrCouponCodeTaken       = errors.New("coupon code already exists")
	ErrInvalidCouponInput    = errors.New("invalid coupon parameters")

	// Design / generation errors
	ErrInvalidDesignInput   = errors.New("invalid design parameters")
	ErrDesignNotFound       = errors.New("design not found")
	ErrDesignHasOrders      = errors.New("design has orders and cannot be deleted")
	ErrDesignNotReady       = errors.New("design has no generated image")
	ErrGenerationInProgress = errors.New("a generation is already in progress")
	ErrGenerationFailed     = errors.New("image generation failed")

	// Order errors
	ErrOrderNotFound     = errors.New("order not found")
	ErrUnknownProduct    = errors.New("unknown product type")
	ErrInvalidVariant    = errors.New("invalid product variant")
	ErrInvalidOrderInput = errors.New("invalid order parameters")
	ErrInvalidWebhook    = errors.New("invalid webhook payload")

	// Credit purchase errors
	ErrInvalidPurchaseInput = errors.New("invalid purchase parameters")

	// Auth errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMerchantNotFound   = errors.New("merchant not found")
	ErrMerchantInactive   = errors.New("merchant is inactive")
	ErrTokenGeneration    = errors.New("token generation failed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
