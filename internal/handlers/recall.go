// internal/handlers/recall.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type RecallHandler struct {
	recallService *services.RecallService
}

func NewRecallHandler(recallService *services.RecallService) *RecallHandler {
	return &RecallHandler{recallService: recallService}
}

// POST /cl/recall
func (h *RecallHandler) RequestRecall(c *gin.Context) {
	clientCode, ok := classificationCode(c)
	if !ok {
		return
	}

	var req services.CreateRecallRequest
	if !bindJSON(c, &req) {
		return
	}

	recall, err := h.recallService.Request(c.Request.Context(), clientCode, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, recall)
}

// GET /cl/recall?cc=
func (h *RecallHandler) GetClientRecalls(c *gin.Context) {
	cc, ok := requireQuery(c, "cc")
	if !ok {
		return
	}

	recalls, err := h.recallService.RecallsOfClient(c.Request.Context(), cc)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, recalls)
}

// GET /sp/recall?sc=
func (h *RecallHandler) GetSupplierRecalls(c *gin.Context) {
	sc, ok := requireQuery(c, "sc")
	if !ok {
		return
	}

	recalls, err := h.recallService.RecallsOfSupplier(c.Request.Context(), sc)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, recalls)
}
