// internal/handlers/faq.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type FaqHandler struct {
	faqService *services.FaqService
}

func NewFaqHandler(faqService *services.FaqService) *FaqHandler {
	return &FaqHandler{faqService: faqService}
}

// GET /faq?cc=
func (h *FaqHandler) GetFaqs(c *gin.Context) {
	faqs, err := h.faqService.List(c.Request.Context(), c.Query("cc"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, faqs)
}

// POST /faq
func (h *FaqHandler) CreateFaq(c *gin.Context) {
	var req services.CreateFaqRequest
	if !bindJSON(c, &req) {
		return
	}

	faq, err := h.faqService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, faq)
}
