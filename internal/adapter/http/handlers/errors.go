package handlers

import (
	"errors"
	"net/http"

	"monopay/internal/adapter/http/dto/request"
	"monopay/internal/infrastructure/logging"
	"monopay/internal/usecase"
	"monopay/pkg"
	"monopay/pkg/monopay"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func mapUseCaseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidStatementRange),
		errors.Is(err, request.ErrAmountConflict), errors.Is(err, request.ErrInvalidMajorValue):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrJournalNotConfigured):
		return pkg.NewDomainErrorSimple("JOURNAL_NOT_CONFIGURED", "Operation journal not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQRCodeUnavailable):
		return pkg.NewDomainErrorSimple("QR_CODE_UNAVAILABLE", "Invoice payment page unavailable", http.StatusNotFound)
	}

	var sdkErr *monopay.Error
	if errors.As(err, &sdkErr) {
		return mapGatewayError(sdkErr)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

// mapGatewayError exposes the SDK message for validation, contract and 4xx gateway errors only.
// Other kinds get a generic message.
func mapGatewayError(e *monopay.Error) *pkg.AppError {
	switch e.Kind {
	case monopay.KindValidation:
		return pkg.NewDomainError(string(e.Code), e.Message, e, http.StatusBadRequest)
	case monopay.KindContractViolation:
		if e.Code == monopay.CodeInvoiceNotFound {
			return pkg.NewDomainError(string(e.Code), e.Message, e, http.StatusNotFound)
		}
		return pkg.NewDomainError(string(e.Code), e.Message, e, http.StatusBadGateway)
	case monopay.KindGateway, monopay.KindLegacyGateway, monopay.KindUnknownGateway:
		switch {
		case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
			return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", e, http.StatusUnauthorized)
		case e.StatusCode == http.StatusNotFound:
			return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_FOUND", e.Message, e, http.StatusNotFound)
		case e.StatusCode >= 400 && e.StatusCode < 500:
			return pkg.NewDomainError("PAYMENT_PROVIDER_REJECTED", e.Message, e, e.StatusCode)
		}
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider error", e, http.StatusBadGateway)
	case monopay.KindDecode:
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_RESPONSE", "Payment provider returned an unreadable response", e, http.StatusBadGateway)
	case monopay.KindNetwork:
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", e, http.StatusGatewayTimeout)
	case monopay.KindClientNotConfigured:
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", e, http.StatusServiceUnavailable)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", e, http.StatusInternalServerError)
}

func writeError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	appErr := mapUseCaseError(err)
	l := logging.FromContext(c.Request.Context(), logger)
	fields := []zap.Field{zap.String("code", appErr.Code), zap.Int("status", appErr.HTTPStatus), zap.Error(err)}
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		l.Error(msg, fields...)
	} else {
		l.Warn(msg, fields...)
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBadRequest(c *gin.Context, logger *zap.Logger, msg string, err error) {
	logging.FromContext(c.Request.Context(), logger).Warn(msg, zap.Error(err))
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
