package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"monopay/internal/adapter/http/dto/response"
	"monopay/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MerchantHandler struct {
	usecase usecase.IMerchantUseCase
	logger  *zap.Logger
}

func NewMerchantHandler(uc usecase.IMerchantUseCase, logger *zap.Logger) *MerchantHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MerchantHandler{usecase: uc, logger: logger}
}

// GetMerchant godoc
// @Summary      Merchant details
// @Tags         merchant
// @Produce      json
// @Success      200  {object}  response.MerchantResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchant [get]
func (h *MerchantHandler) GetMerchant(c *gin.Context) {
	m, err := h.usecase.Details(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "[payment][handler] merchant failed", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMerchant(m))
}

// GetStatement godoc
// @Summary      Merchant statement
// @Tags         merchant
// @Produce      json
// @Param        from  query     int     true   "Unix seconds"
// @Param        to    query     int     false  "Unix seconds"
// @Param        code  query     string  false  "Sub-merchant code"
// @Success      200   {object}  response.StatementResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /merchant/statement [get]
func (h *MerchantHandler) GetStatement(c *gin.Context) {
	from, err := parseUnix(c.Query("from"))
	if err != nil {
		writeBadRequest(c, h.logger, "[payment][handler] statement invalid from", err)
		return
	}
	to, err := parseUnix(c.Query("to"))
	if err != nil {
		writeBadRequest(c, h.logger, "[payment][handler] statement invalid to", err)
		return
	}

	list, err := h.usecase.Statement(c.Request.Context(), from, to, c.Query("code"))
	if err != nil {
		writeError(c, h.logger, "[payment][handler] statement failed", err)
		return
	}
	if list == nil {
		list = []any{}
	}
	c.JSON(http.StatusOK, response.StatementResponse{List: list})
}

// GetPublicKey godoc
// @Summary      Webhook signature public key
// @Tags         merchant
// @Produce      json
// @Success      200  {object}  response.PublicKeyResponse
// @Failure      502  {object}  pkg.HTTPError
// @Router       /merchant/pubkey [get]
func (h *MerchantHandler) GetPublicKey(c *gin.Context) {
	key, err := h.usecase.PublicKey(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, "[payment][handler] pubkey failed", err)
		return
	}
	c.JSON(http.StatusOK, response.PublicKeyResponse{Key: key})
}

// parseUnix treats an empty value as 0; range checks belong to the use case.
func parseUnix(v string) (int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseInt(v, 10, 64)
}
