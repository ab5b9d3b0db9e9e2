package handler

import (
	"net/http"
	"strings"

	domainerr "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-engine/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetCredits handles the GET /api/users/:userId/credits endpoint
func (h *UserHandler) GetCredits(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		_ = c.Error(domainerr.ErrInvalidUserID)
		return
	}

	balance, err := h.userUseCase.GetCreditBalance(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.CreditBalanceResponse{
		UserID:           balance.UserID,
		PhoneNumber:      balance.PhoneNumber,
		FreeCredits:      balance.FreeCredits,
		PaidCredits:      balance.PaidCredits,
		UsedCredits:      balance.UsedCredits,
		AvailableCredits: balance.AvailableCredits,
	})
}
