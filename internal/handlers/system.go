package handlers

import (
	"net/http"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/config"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	cfg *config.Config
}

func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{cfg: cfg}
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"vanta-backend"`
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "vanta-backend"})
}

type PaymentInfo struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
	Amount        int    `json:"amount"`
}

type PaymentInfoResponse struct {
	Ok      bool        `json:"ok"`
	Payment PaymentInfo `json:"payment"`
}

// PaymentInfo godoc
// @Summary      Static payment information
// @Description  Read-only bank transfer details from configuration
// @Tags         system
// @Produce      json
// @Success      200 {object} PaymentInfoResponse
// @Router       /payment/info [get]
func (h *SystemHandler) PaymentInfo(c *gin.Context) {
	c.JSON(http.StatusOK, PaymentInfoResponse{
		Ok: true,
		Payment: PaymentInfo{
			BankName:      h.cfg.BankName,
			AccountNumber: h.cfg.BankAccountNumber,
			AccountHolder: h.cfg.BankAccountHolder,
			Amount:        h.cfg.PaymentAmount,
		},
	})
}
