// internal/handlers/stock.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type StockHandler struct {
	stockService *services.StockService
}

func NewStockHandler(stockService *services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

// GET /sp/stock?sc=&pc=
func (h *StockHandler) GetRemainStock(c *gin.Context) {
	sc, ok := requireQuery(c, "sc")
	if !ok {
		return
	}
	pc, ok := requireQuery(c, "pc")
	if !ok {
		return
	}

	stock, err := h.stockService.RemainStock(c.Request.Context(), sc, pc)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, stock)
}

// POST /sp/order
func (h *StockHandler) PlaceOrder(c *gin.Context) {
	supplierCode, ok := classificationCode(c)
	if !ok {
		return
	}

	var req services.PlaceOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.stockService.PlaceOrder(c.Request.Context(), supplierCode, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, order)
}
