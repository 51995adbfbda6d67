// internal/handlers/member.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/services"
	"github.com/Sehun-s-Portfolio/Circularlabs-RFID-BackEnd-sub001/internal/utils"
)

type MemberHandler struct {
	memberService *services.MemberService
}

func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// POST /member/signup
func (h *MemberHandler) Signup(c *gin.Context) {
	var req services.SignupRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.memberService.Signup(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"member_id":           member.ID,
		"classification_code": member.ClassificationCode,
		"grade":               member.Grade.String(),
	}).Info("Member signed up")
	utils.CreatedResponse(c, member)
}

// POST /member/login
func (h *MemberHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.memberService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, resp)
}

// DELETE /member/me
func (h *MemberHandler) Withdraw(c *gin.Context) {
	memberID, exists := utils.GetMemberIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	if err := h.memberService.Withdraw(c.Request.Context(), memberID); err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("member_id", memberID).Info("Member withdrew")
	utils.NoContentResponse(c)
}

// GET /cl/member/clients?sc=
func (h *MemberHandler) GetClients(c *gin.Context) {
	sc := c.Query("sc")
	logrus.WithFields(logrus.Fields{
		"request_id": c.GetString("request_id"),
		"sc":         sc,
	}).Info("Client list requested")

	if _, ok := requireQuery(c, "sc"); !ok {
		return
	}

	clients, err := h.memberService.ClientsOfSupplier(c.Request.Context(), sc)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, clients)
}

// GET /sp/member/supplier?sc=
func (h *MemberHandler) GetSupplier(c *gin.Context) {
	sc, ok := requireQuery(c, "sc")
	if !ok {
		return
	}

	supplier, err := h.memberService.SupplierByCode(c.Request.Context(), sc)
	if err != nil {
		respondError(c, err)
		return
	}

	// An unknown code is answered with a JSON null.
	utils.SuccessResponse(c, supplier)
}
