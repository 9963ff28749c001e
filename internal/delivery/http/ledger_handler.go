package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tradeledger/internal/apperror"
	"tradeledger/internal/delivery/http/dto"
	"tradeledger/internal/domain"
)

// LedgerHandler handles the holdings/positions/orders routes. Every
// handler issues exactly one repository call.
type LedgerHandler struct {
	holdingRepo  domain.HoldingRepository
	positionRepo domain.PositionRepository
	orderRepo    domain.OrderRepository
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(
	holdingRepo domain.HoldingRepository,
	positionRepo domain.PositionRepository,
	orderRepo domain.OrderRepository,
) *LedgerHandler {
	return &LedgerHandler{
		holdingRepo:  holdingRepo,
		positionRepo: positionRepo,
		orderRepo:    orderRepo,
	}
}

// GetAllHoldings returns every holding
// GET /allHoldings
func (h *LedgerHandler) GetAllHoldings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	holdings, err := h.holdingRepo.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, holdings)
}

// GetAllPositions returns every position
// GET /allPositions
func (h *LedgerHandler) GetAllPositions(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	positions, err := h.positionRepo.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, positions)
}

// GetAllOrders returns every order
// GET /allOrders
func (h *LedgerHandler) GetAllOrders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	orders, err := h.orderRepo.ListAll(ctx)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, orders)
}

// NewOrder records a buy/sell instruction
// POST /newOrder
func (h *LedgerHandler) NewOrder(c echo.Context) error {
	var req dto.NewOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, apperror.NewValidation("invalid request payload"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	order, err := h.orderRepo.Create(ctx, &domain.Order{
		Name:  req.Name,
		Qty:   req.Qty,
		Price: req.Price,
		Mode:  req.Mode,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewOrderResponse{
		Message: "Order saved",
		Order:   order,
	})
}
