package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	ErrProductNotFound   = errors.New("product not found")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
	ErrAlreadyReviewed   = errors.New("product already reviewed")
	ErrInvalidProduct    = errors.New("invalid product")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrCartNotFound     = errors.New("cart not found")
	ErrCartItemNotFound = errors.New("item not found in cart")
	ErrQuantityInvalid  = errors.New("quantity must be at least 1")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidAddress   = errors.New("shipping address is incomplete")

	ErrOrderNotFound            = errors.New("order not found")
	ErrInvalidStatus            = errors.New("invalid status")
	ErrOrderNotCancellable      = errors.New("order can only be cancelled while processing")
	ErrUnsupportedPaymentMethod = errors.New("payment method requires hosted checkout")

	ErrEmptyItems             = errors.New("no items provided")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrSessionIDRequired      = errors.New("session id is required")
	ErrPaymentNotCompleted    = errors.New("payment not completed")
	ErrInvalidSessionMetadata = errors.New("invalid checkout session metadata")
	ErrInvalidSignature       = errors.New("invalid webhook signature")
	ErrPaymentsDisabled       = errors.New("payments are not configured")
	ErrUpstream               = errors.New("payment provider error")

	// ErrNoFulfillableItems: every product paid for has left the catalog.
	ErrNoFulfillableItems = fmt.Errorf("%w: none of the paid products exist", ErrInvalidSessionMetadata)
)
