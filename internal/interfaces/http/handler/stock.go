package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	inventoryapp "github.com/oms/backend/internal/application/inventory"
	"github.com/oms/backend/internal/interfaces/http/dto"
)

// StockHandler handles stock-related API endpoints. All routes are scoped
// under a product; a stock lot is never addressable outside its product.
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// RegisterRoutes registers stock routes on the given router group
func (h *StockHandler) RegisterRoutes(rg *gin.RouterGroup) {
	stocks := rg.Group("/products/:productId/stocks")
	{
		stocks.POST("", h.Create)
		stocks.GET("", h.ListByProduct)
		stocks.GET("/:stockId", h.GetByID)
		stocks.PUT("/:stockId", h.Update)
		stocks.DELETE("/:stockId", h.Delete)
	}
}

// Create creates a new stock lot under the product in the path
func (h *StockHandler) Create(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req inventoryapp.CreateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.Create(c.Request.Context(), productID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, stock)
}

// GetByID retrieves a stock lot scoped to the product in the path
func (h *StockHandler) GetByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	stockID, err := uuid.Parse(c.Param("stockId"))
	if err != nil {
		h.BadRequest(c, "Invalid stock ID format")
		return
	}

	stock, err := h.stockService.GetByID(c.Request.Context(), productID, stockID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stock)
}

// ListByProduct retrieves a page of stock lots for the product in the path
func (h *StockHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var page dto.ListRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stocks, err := h.stockService.ListByProduct(c.Request.Context(), productID, page.Limit, page.Offset)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stocks)
}

// Update updates a stock lot scoped to the product in the path
func (h *StockHandler) Update(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	stockID, err := uuid.Parse(c.Param("stockId"))
	if err != nil {
		h.BadRequest(c, "Invalid stock ID format")
		return
	}

	var req inventoryapp.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	stock, err := h.stockService.Update(c.Request.Context(), productID, stockID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, stock)
}

// Delete deletes a stock lot scoped to the product in the path
func (h *StockHandler) Delete(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	stockID, err := uuid.Parse(c.Param("stockId"))
	if err != nil {
		h.BadRequest(c, "Invalid stock ID format")
		return
	}

	deleted, err := h.stockService.Delete(c.Request.Context(), productID, stockID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "Stock not found")
		return
	}

	h.NoContent(c)
}
