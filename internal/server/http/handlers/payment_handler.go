package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/server/http/dto"
)

// PaymentHandler manages transfer endpoints.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// Pay handles POST /api/users/:username/payments.
func (h *PaymentHandler) Pay(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	payment, err := h.facade.Pay(c.Request.Context(), UsernameParam(c), req.Target, req.Amount, req.Note)
	if err != nil {
		writeError(c, err)
		return
	}

	if payment == nil {
		c.JSON(http.StatusOK, dto.PaymentResult{Funding: string(model.FundingBalance)})
		return
	}
	c.JSON(http.StatusOK, dto.PaymentResult{Funding: string(model.FundingCard), PaymentID: payment.ID.String()})
}

// List handles GET /api/users/:username/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.facade.Payments(c.Request.Context(), UsernameParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(payments) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	resp := make([]dto.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		resp = append(resp, toPaymentResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:        p.ID.String(),
		Actor:     p.Actor,
		Target:    p.Target,
		Amount:    p.Amount,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}
