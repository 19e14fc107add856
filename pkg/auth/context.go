package auth

import (
	"context"
	"errors"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const shopperIDKey contextKey = "shopper_id"

// ErrShopperNotFound is returned when no shopper ID exists in the request context.
var ErrShopperNotFound = errors.New("shopper_id not found in context")

// ShopperIDFromCtx returns the anonymous shopper ID set by RequireShopper.
func ShopperIDFromCtx(ctx context.Context) (string, error) {
	id, ok := ctx.Value(shopperIDKey).(string)
	if !ok || id == "" {
		return "", ErrShopperNotFound
	}
	return id, nil
}

// WithShopperID returns a new context carrying shopperID.
func WithShopperID(ctx context.Context, shopperID string) context.Context {
	return context.WithValue(ctx, shopperIDKey, shopperID)
}
