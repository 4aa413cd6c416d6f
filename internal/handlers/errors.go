package handlers

import (
	"errors"
	"net/http"
	"strings"

	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	notFoundErrs = []error{
		service.ErrProductNotFound,
		service.ErrCartNotFound,
		service.ErrCartItemNotFound,
		service.ErrOrderNotFound,
		service.ErrUserNotFound,
	}
	badRequestErrs = []error{
		service.ErrValidation,
		service.ErrEmptyCart,
		service.ErrEmptyItems,
		service.ErrInsufficientStock,
		service.ErrQuantityInvalid,
		service.ErrInvalidStatus,
		service.ErrOrderNotCancellable,
		service.ErrUnsupportedPaymentMethod,
		service.ErrPaymentNotCompleted,
		service.ErrInvalidSessionMetadata,
		service.ErrInvalidResetToken,
		service.ErrInvalidSignature,
		service.ErrInvalidCategory,
		service.ErrInvalidProduct,
		service.ErrInvalidRating,
		service.ErrInvalidAddress,
		service.ErrSessionIDRequired,
		service.ErrInvalidAmount,
	}
	conflictErrs = []error{
		service.ErrAlreadyReviewed,
		service.ErrEmailExists,
	}
)

func isAny(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// respondError maps a service error onto the HTTP taxonomy and writes the error envelope.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case isAny(err, notFoundErrs):
		log.Warn("not found", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))
	case isAny(err, badRequestErrs):
		log.Warn("bad request", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewBadRequestError(err.Error()))
	case errors.Is(err, service.ErrUnauthorized), errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.NewForbiddenError("not authorized to access this resource"))
	case isAny(err, conflictErrs):
		c.JSON(http.StatusConflict, dto.NewConflictError(err.Error()))
	case errors.Is(err, service.ErrTooManyRequests):
		c.JSON(http.StatusTooManyRequests, dto.NewRateLimitedError("too many requests, try again later"))
	case errors.Is(err, service.ErrUpstream):
		log.Error("payment provider failure", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadGateway, dto.NewUpstreamError(upstreamMessage(err)))
	case errors.Is(err, service.ErrPaymentsDisabled):
		c.JSON(http.StatusServiceUnavailable, dto.NewUnavailableError(err.Error()))
	default:
		log.Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}

// upstreamMessage strips the sentinel prefix so the provider's own message is surfaced.
func upstreamMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, service.ErrUpstream.Error()+": "); ok && rest != "" {
		return rest
	}
	return msg
}

func bindJSON(c *gin.Context, log *zap.Logger, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warn("invalid request body", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.BindingError(err))
		return false
	}
	return true
}

func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid id", []dto.FieldError{
			{Field: name, Message: "must be a 24 character hex id"},
		}))
		return primitive.NilObjectID, false
	}
	return id, true
}
