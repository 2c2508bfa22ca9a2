package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/minivenmo/internal/adapter/card"
	domainErrors "github.com/polkiloo/minivenmo/internal/domain/errors"
	"github.com/polkiloo/minivenmo/internal/server/http/dto"
)

// UsernameParam extracts the account name from the request path.
func UsernameParam(c *gin.Context) string {
	return c.Param("username")
}

func writeError(c *gin.Context, err error) {
	var tooMany card.TooManyRequestsError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrBalanceAmount):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrPaymentCardDeclined):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrUsername),
		errors.Is(err, domainErrors.ErrCreditCard),
		errors.Is(err, domainErrors.ErrPayment):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	case errors.As(err, &tooMany):
		c.Header("Retry-After", strconv.Itoa(int(tooMany.RetryAfter.Seconds())))
		c.Status(http.StatusServiceUnavailable)
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func maskCard(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
