package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/accounts"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/budget"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/game"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/mail"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/store"
	"github.com/renantrendt/yates-inc-sub001/internal/domain/tasks"
	"github.com/renantrendt/yates-inc-sub001/internal/pkg/validators"
)

// statusOf maps domain errors to HTTP status codes. Rejected input is a bad request;
// anything unrecognised (storage, broker, encoding) is an internal error.
func statusOf(err error) int {
	switch {
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, accounts.ErrForbidden),
		errors.Is(err, budget.ErrForbidden),
		errors.Is(err, mail.ErrNotParticipant),
		errors.Is(err, accounts.ErrInvalidAccessCode):
		return http.StatusForbidden
	case errors.Is(err, accounts.ErrNotFound),
		errors.Is(err, mail.ErrNotFound),
		errors.Is(err, tasks.ErrNotFound),
		errors.Is(err, budget.ErrNotFound),
		errors.Is(err, store.ErrNotFound),
		errors.Is(err, game.ErrNotFound),
		errors.Is(err, game.ErrUnknownStock):
		return http.StatusNotFound
	case errors.Is(err, accounts.ErrConflict),
		errors.Is(err, accounts.ErrPasswordAlreadySet),
		errors.Is(err, mail.ErrHandleTaken),
		errors.Is(err, mail.ErrHandleAlreadyClaimed),
		errors.Is(err, tasks.ErrInvalidTransition),
		errors.Is(err, game.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, store.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, game.ErrInsufficientFunds),
		errors.Is(err, game.ErrInsufficientStokens),
		errors.Is(err, game.ErrNoTickets),
		errors.Is(err, game.ErrNotEnoughMiners),
		errors.Is(err, game.ErrNotEnoughShares),
		errors.Is(err, game.ErrLocked),
		errors.Is(err, game.ErrNoWizardTower),
		errors.Is(err, game.ErrRitualActive),
		errors.Is(err, game.ErrPrestigeUnavailable),
		errors.Is(err, game.ErrAlreadyOwned),
		errors.Is(err, game.ErrNotOwned),
		errors.Is(err, mail.ErrNoHandle):
		return http.StatusUnprocessableEntity
	case errors.Is(err, validators.ErrValidation),
		errors.Is(err, store.ErrInvalidCart),
		errors.Is(err, game.ErrInvalidAmount),
		errors.Is(err, game.ErrInvalidState),
		errors.Is(err, game.ErrUnknownPickaxe),
		errors.Is(err, game.ErrUnknownRock),
		errors.Is(err, game.ErrUnknownRitual):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err with the status derived from it, prefixed by what failed
func respondError(ctx *gin.Context, action string, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("%s: %v", action, err.Error())
	ctx.JSON(statusOf(err), errorResponse)
}

// respondInvalid writes a 400 for unreadable or invalid request bodies
func respondInvalid(ctx *gin.Context, prefix string, err error) {
	var errorResponse ErrorResponse
	errorResponse.Message = fmt.Sprintf("%s: %v", prefix, err.Error())
	ctx.JSON(http.StatusBadRequest, errorResponse)
}

// bindJSON decodes and validates the request body into req
func bindJSON(ctx *gin.Context, req interface{ Validate() error }) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		respondInvalid(ctx, "invalid request body", err)
		return false
	}
	if err := req.Validate(); err != nil {
		respondInvalid(ctx, "validation failed", err)
		return false
	}
	return true
}
