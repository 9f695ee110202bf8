package httpapi

import (
	"context"
	"errors"
	"net/http"

	"payment-transactions/internal/domain"
	"payment-transactions/internal/repo"
	"payment-transactions/internal/result"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HealthChecker reports store health; database.Service satisfies it.
type HealthChecker interface {
	Health(ctx context.Context) map[string]string
}

type Handler struct {
	transactions repo.TransactionRepo
	health       HealthChecker
	log          *zap.Logger
}

// NewHandler accepts a nil health checker when the store has no database behind it.
func NewHandler(transactions repo.TransactionRepo, health HealthChecker, log *zap.Logger) *Handler {
	return &Handler{transactions: transactions, health: health, log: log}
}

func (h *Handler) Health(c *gin.Context) {
	if h.health == nil {
		c.JSON(http.StatusOK, gin.H{"status": "up", "store": "memory"})
		return
	}

	stats := h.health.Health(c.Request.Context())
	if stats["status"] != "up" {
		c.JSON(http.StatusServiceUnavailable, stats)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var req createTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	res := h.transactions.Create(c.Request.Context(), req.toDomain())
	if res.IsFailure() {
		h.fail(c, res.Err())
		return
	}
	c.JSON(http.StatusCreated, toResponse(res.Value()))
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	var req updateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	found := h.transactions.FindByID(ctx, c.Param("id"))
	if found.IsFailure() {
		h.fail(c, found.Err())
		return
	}

	tx := found.Value()
	req.apply(&tx)

	res := h.transactions.Update(ctx, tx)
	if res.IsFailure() {
		h.fail(c, res.Err())
		return
	}
	c.JSON(http.StatusOK, toResponse(res.Value()))
}

func (h *Handler) GetTransaction(c *gin.Context) {
	respondOne(h, c, h.transactions.FindByID(c.Request.Context(), c.Param("id")))
}

func (h *Handler) GetTransactionByReference(c *gin.Context) {
	respondOne(h, c, h.transactions.FindByReference(c.Request.Context(), c.Param("reference")))
}

// HeadTransaction answers 200 or 404 without a body.
func (h *Handler) HeadTransaction(c *gin.Context) {
	res := h.transactions.ExistsByID(c.Request.Context(), c.Param("id"))
	switch {
	case res.IsFailure():
		c.Status(http.StatusInternalServerError)
	case res.Value():
		c.Status(http.StatusOK)
	default:
		c.Status(http.StatusNotFound)
	}
}

// ListTransactions filters by customerId or customerEmail; with neither it lists everything.
func (h *Handler) ListTransactions(c *gin.Context) {
	ctx := c.Request.Context()
	customerID := c.Query("customerId")
	email := c.Query("customerEmail")

	var res result.Result[[]domain.Transaction]
	switch {
	case customerID != "" && email != "":
		c.JSON(http.StatusBadRequest, errorResponse{Error: "use either customerId or customerEmail, not both"})
		return
	case customerID != "":
		res = h.transactions.FindByCustomerID(ctx, customerID)
	case email != "":
		res = h.transactions.FindByCustomerEmail(ctx, email)
	default:
		res = h.transactions.FindAll(ctx)
	}

	if res.IsFailure() {
		h.fail(c, res.Err())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": toResponseList(res.Value())})
}

func respondOne(h *Handler, c *gin.Context, res result.Result[domain.Transaction]) {
	if res.IsFailure() {
		h.fail(c, res.Err())
		return
	}
	c.JSON(http.StatusOK, toResponse(res.Value()))
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, repo.ErrTransactionNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	h.log.Error("transaction request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
