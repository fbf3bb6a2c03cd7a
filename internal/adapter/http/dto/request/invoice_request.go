package request

import (
	"errors"
	"math"
	"strings"

	"monopay/pkg/monopay"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountConflict    = errors.New("amount and amount_major are mutually exclusive")
	ErrInvalidMajorValue = errors.New("amount_major must be a decimal with at most 2 fraction digits")
)

// minorUnitExponent applies to every currency the gateway accepts (UAH, USD, EUR).
const minorUnitExponent = 2

// AmountInput accepts either minor units (amount) or a major-unit decimal string (amount_major).
// amount_major must fit int64 minor units; the minimum amount is checked by the SDK.
type AmountInput struct {
	Amount      *int64 `json:"amount,omitempty" example:"4200"`
	AmountMajor string `json:"amount_major,omitempty" example:"42.00"`
}

// ResolveAmount returns the amount in minor units and whether one was supplied at all.
func (a AmountInput) ResolveAmount() (int64, bool, error) {
	major := strings.TrimSpace(a.AmountMajor)
	if a.Amount != nil && major != "" {
		return 0, false, ErrAmountConflict
	}
	if a.Amount != nil {
		return *a.Amount, true, nil
	}
	if major == "" {
		return 0, false, nil
	}
	d, err := decimal.NewFromString(major)
	if err != nil {
		return 0, false, ErrInvalidMajorValue
	}
	minor := d.Shift(minorUnitExponent)
	if !minor.IsInteger() || !fitsInt64(minor) {
		return 0, false, ErrInvalidMajorValue
	}
	return minor.IntPart(), true, nil
}

func fitsInt64(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(decimal.NewFromInt(math.MinInt64)) && d.LessThanOrEqual(decimal.NewFromInt(math.MaxInt64))
}

// InvoiceCreateRequest mirrors the gateway's invoice/create payload. Extra fields are
// forwarded untouched.
type InvoiceCreateRequest struct {
	AmountInput
	Ccy              int            `json:"ccy,omitempty" example:"980"`
	MerchantPaymInfo map[string]any `json:"merchantPaymInfo,omitempty"`
	RedirectURL      string         `json:"redirectUrl,omitempty"`
	WebHookURL       string         `json:"webHookUrl,omitempty"`
	Validity         int64          `json:"validity,omitempty"`
	PaymentType      string         `json:"paymentType,omitempty" example:"debit"`
	QRID             string         `json:"qrId,omitempty"`
	Code             string         `json:"code,omitempty"`
	SaveCardData     map[string]any `json:"saveCardData,omitempty"`
	Extra            map[string]any `json:"extra,omitempty"`
	WithQR           bool           `json:"with_qr,omitempty"`
}

func (r InvoiceCreateRequest) ToParams() (map[string]any, error) {
	params := make(map[string]any, len(r.Extra)+10)
	for k, v := range r.Extra {
		params[k] = v
	}
	if err := setAmount(params, r.AmountInput); err != nil {
		return nil, err
	}
	setInt(params, "ccy", int64(r.Ccy))
	setMap(params, "merchantPaymInfo", r.MerchantPaymInfo)
	setString(params, "redirectUrl", r.RedirectURL)
	setString(params, "webHookUrl", r.WebHookURL)
	setInt(params, "validity", r.Validity)
	setString(params, "paymentType", r.PaymentType)
	setString(params, "qrId", r.QRID)
	setString(params, "code", r.Code)
	setMap(params, "saveCardData", r.SaveCardData)
	return params, nil
}

// CaptureRequest finalizes a hold. Without an amount the invoice's current amount is captured.
type CaptureRequest struct {
	AmountInput
	Items []any `json:"items,omitempty"`
}

// ResolveAmountPtr returns nil when the caller did not pick an amount.
func (r CaptureRequest) ResolveAmountPtr() (*int64, error) {
	v, ok, err := r.AmountInput.ResolveAmount()
	if err != nil || !ok {
		return nil, err
	}
	return &v, nil
}

type CardDataRequest struct {
	Pan string `json:"pan" example:"4242424242424242"`
	Exp string `json:"exp" example:"0642"`
	Cvv string `json:"cvv" example:"123"`
}

// DirectPaymentRequest mirrors the gateway's invoice/payment-direct payload.
type DirectPaymentRequest struct {
	AmountInput
	Ccy              int              `json:"ccy,omitempty" example:"980"`
	CardData         *CardDataRequest `json:"cardData,omitempty"`
	MerchantPaymInfo map[string]any   `json:"merchantPaymInfo,omitempty"`
	RedirectURL      string           `json:"redirectUrl,omitempty"`
	WebHookURL       string           `json:"webHookUrl,omitempty"`
	PaymentType      string           `json:"paymentType,omitempty"`
	InitiationKind   string           `json:"initiationKind,omitempty" example:"client"`
	Extra            map[string]any   `json:"extra,omitempty"`
}

func (r DirectPaymentRequest) ToParams() (map[string]any, error) {
	params := make(map[string]any, len(r.Extra)+8)
	for k, v := range r.Extra {
		params[k] = v
	}
	if err := setAmount(params, r.AmountInput); err != nil {
		return nil, err
	}
	setInt(params, "ccy", int64(r.Ccy))
	if r.CardData != nil {
		params["cardData"] = monopay.CardData{Pan: r.CardData.Pan, Exp: r.CardData.Exp, Cvv: r.CardData.Cvv}
	}
	setMap(params, "merchantPaymInfo", r.MerchantPaymInfo)
	setString(params, "redirectUrl", r.RedirectURL)
	setString(params, "webHookUrl", r.WebHookURL)
	setString(params, "paymentType", r.PaymentType)
	setString(params, "initiationKind", r.InitiationKind)
	return params, nil
}

func setAmount(params map[string]any, in AmountInput) error {
	amount, ok, err := in.ResolveAmount()
	if err != nil {
		return err
	}
	if ok {
		params["amount"] = amount
	}
	return nil
}

func setString(params map[string]any, key, v string) {
	if v = strings.TrimSpace(v); v != "" {
		params[key] = v
	}
}

func setInt(params map[string]any, key string, v int64) {
	if v != 0 {
		params[key] = v
	}
}

func setMap(params map[string]any, key string, v map[string]any) {
	if len(v) > 0 {
		params[key] = v
	}
}
