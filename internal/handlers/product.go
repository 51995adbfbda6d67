// internal/handlers/product.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/i18n"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
}

func NewProductHandler(productService *services.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

// GET /cl/product/catalog
func (h *ProductHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.productService.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, catalog)
}

// GET /cl/product?cc=
func (h *ProductHandler) GetClientProducts(c *gin.Context) {
	cc, ok := requireQuery(c, "cc")
	if !ok {
		return
	}

	products, err := h.productService.ClientProducts(c.Request.Context(), cc)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// POST /sp/product
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	supplierCode, ok := classificationCode(c)
	if !ok {
		return
	}

	var req services.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}

	supply, err := h.productService.CreateProduct(c.Request.Context(), supplierCode, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, supply)
}

// POST /sp/product/:id/image
func (h *ProductHandler) UploadImage(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplierCode, ok := classificationCode(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "id"), nil)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalid), err.Error())
		return
	}
	defer file.Close()

	product, err := h.productService.UploadImage(c.Request.Context(), supplierCode, uint(id), file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// POST /sp/client-product
func (h *ProductHandler) MapClientProduct(c *gin.Context) {
	supplierCode, ok := classificationCode(c)
	if !ok {
		return
	}

	var req services.MapClientProductRequest
	if !bindJSON(c, &req) {
		return
	}

	mapping, err := h.productService.MapClientProduct(c.Request.Context(), supplierCode, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, mapping)
}
