package monopay

import (
	"fmt"
	"strings"
)

// CardData is the cardData object of a direct payment. A plain map with the same keys works too.
type CardData struct {
	Pan string `json:"pan"`
	Exp string `json:"exp"`
	Cvv string `json:"cvv"`
}

func validateAmount(params Params) error {
	raw, ok := present(params, "amount")
	if !ok {
		return validationError(CodeAmountInvalid, "Amount is a required value")
	}
	amount, ok := toInt64(raw)
	if !ok || amount < 1 {
		return validationError(CodeAmountInvalid, "Amount must be a natural number")
	}
	return nil
}

var cardFields = []struct {
	key     string
	message string
}{
	{"pan", "Card number is a required value."},
	{"exp", "Expiration date is a required value."},
	{"cvv", "CVV is a required value."},
}

func validateCardData(params Params) error {
	raw, ok := present(params, "cardData")
	if !ok {
		return missingCardField("cardData", "Card data is required. It should contain card number, expiration date and cvv.")
	}
	card, ok := cardFieldsOf(raw)
	if !ok {
		return missingCardField("cardData", "Card data is required. It should contain card number, expiration date and cvv.")
	}
	for _, f := range cardFields {
		if v, ok := present(card, f.key); !ok || strings.TrimSpace(fmt.Sprint(v)) == "" {
			return missingCardField(f.key, f.message)
		}
	}
	return nil
}

func cardFieldsOf(v any) (map[string]any, bool) {
	switch card := v.(type) {
	case map[string]any:
		return card, true
	case Params:
		return card, true
	case map[string]string:
		out := make(map[string]any, len(card))
		for k, s := range card {
			out[k] = s
		}
		return out, true
	case CardData:
		return card.fields(), true
	case *CardData:
		if card == nil {
			return nil, false
		}
		return card.fields(), true
	}
	return nil, false
}

func (c CardData) fields() map[string]any {
	out := map[string]any{}
	if c.Pan != "" {
		out["pan"] = c.Pan
	}
	if c.Exp != "" {
		out["exp"] = c.Exp
	}
	if c.Cvv != "" {
		out["cvv"] = c.Cvv
	}
	return out
}

func missingCardField(field, msg string) *Error {
	e := validationError(CodeCardFieldMissing, msg)
	e.Field = field
	return e
}
