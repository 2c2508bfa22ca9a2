package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/minivenmo/internal/domain/model"
	"github.com/polkiloo/minivenmo/internal/server/http/dto"
	"github.com/polkiloo/minivenmo/internal/usecase"
)

// UserHandler manages account endpoints.
type UserHandler struct {
	facade AccountFacade
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade AccountFacade) *UserHandler {
	return &UserHandler{facade: facade}
}

// Create handles POST /api/users.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	summary, err := h.facade.CreateUser(c.Request.Context(), req.Username, req.Balance, req.CreditCardNumber)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(*summary))
}

// List handles GET /api/users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.Users(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/users/:username.
func (h *UserHandler) Get(c *gin.Context) {
	summary, err := h.facade.User(c.Request.Context(), UsernameParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*summary))
}

// Deposit handles POST /api/users/:username/balance.
func (h *UserHandler) Deposit(c *gin.Context) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	summary, err := h.facade.AddToBalance(c.Request.Context(), UsernameParam(c), req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(*summary))
}

// AddFriend handles POST /api/users/:username/friends.
func (h *UserHandler) AddFriend(c *gin.Context) {
	var req dto.FriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.AddFriend(c.Request.Context(), UsernameParam(c), req.Friend); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Feed handles GET /api/users/:username/feed. With ?format=text the feed is
// rendered one entry per line.
func (h *UserHandler) Feed(c *gin.Context) {
	feed, err := h.facade.Feed(c.Request.Context(), UsernameParam(c))
	if err != nil {
		writeError(c, err)
		return
	}
	if len(feed) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	if c.Query("format") == "text" {
		c.Header("Content-Type", "text/plain; charset=utf-8")
		c.Status(http.StatusOK)
		_ = usecase.RenderFeed(c.Writer, feed)
		return
	}
	c.JSON(http.StatusOK, feed)
}

func toUserResponse(summary model.AccountSummary) dto.UserResponse {
	friends := summary.Friends
	if friends == nil {
		friends = []string{}
	}
	return dto.UserResponse{
		Username:   summary.Username,
		Balance:    summary.Balance,
		CreditCard: maskCard(summary.CreditCardNumber),
		Friends:    friends,
		CreatedAt:  summary.CreatedAt,
	}
}
