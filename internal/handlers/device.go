// internal/handlers/device.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type DeviceHandler struct {
	deviceService *services.DeviceService
	scanService   *services.ScanService
}

func NewDeviceHandler(deviceService *services.DeviceService, scanService *services.ScanService) *DeviceHandler {
	return &DeviceHandler{
		deviceService: deviceService,
		scanService:   scanService,
	}
}

// POST /device/scan
func (h *DeviceHandler) Scan(c *gin.Context) {
	var req services.ScanRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.scanService.Scan(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, resp)
}

// GET /device/supplier?dc=
func (h *DeviceHandler) GetDeviceSupplier(c *gin.Context) {
	dc, ok := requireQuery(c, "dc")
	if !ok {
		return
	}

	device, err := h.deviceService.DeviceByCode(c.Request.Context(), dc)
	if err != nil {
		respondError(c, err)
		return
	}

	// An unknown code is answered with a JSON null.
	utils.SuccessResponse(c, device)
}

// POST /sp/device
func (h *DeviceHandler) RegisterDevice(c *gin.Context) {
	supplierCode, ok := classificationCode(c)
	if !ok {
		return
	}

	var req services.RegisterDeviceRequest
	if !bindJSON(c, &req) {
		return
	}

	device, err := h.deviceService.Register(c.Request.Context(), supplierCode, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, device)
}

// GET /sp/scan?sc=&page=&limit=
func (h *DeviceHandler) GetScanHistory(c *gin.Context) {
	sc, ok := requireQuery(c, "sc")
	if !ok {
		return
	}

	result, err := h.scanService.ScansOfSupplier(c.Request.Context(), sc, utils.GetPaginationParams(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, result)
}

// GET /sp/chip/:code
func (h *DeviceHandler) TraceChip(c *gin.Context) {
	supplierCode, ok := classificationCode(c)
	if !ok {
		return
	}

	trace, err := h.scanService.TraceChip(c.Request.Context(), supplierCode, c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, trace)
}
