package request

import (
	"errors"
	"testing"

	"monopay/pkg/monopay"
)

func int64Ptr(v int64) *int64 { return &v }

func TestAmountInput_ResolveAmount(t *testing.T) {
	cases := []struct {
		name    string
		in      AmountInput
		want    int64
		present bool
		err     error
	}{
		{name: "minor units", in: AmountInput{Amount: int64Ptr(4200)}, want: 4200, present: true},
		{name: "major units", in: AmountInput{AmountMajor: "42.5"}, want: 4250, present: true},
		{name: "major units with spaces", in: AmountInput{AmountMajor: " 0.01 "}, want: 1, present: true},
		{name: "negative passes through", in: AmountInput{AmountMajor: "-1"}, want: -100, present: true},
		{name: "absent", in: AmountInput{}},
		{name: "too precise", in: AmountInput{AmountMajor: "1.005"}, err: ErrInvalidMajorValue},
		{name: "not a number", in: AmountInput{AmountMajor: "ten"}, err: ErrInvalidMajorValue},
		{name: "overflows int64 minor units", in: AmountInput{AmountMajor: "184467440737095516.17"}, err: ErrInvalidMajorValue},
		{name: "just above int64", in: AmountInput{AmountMajor: "92233720368547758.08"}, err: ErrInvalidMajorValue},
		{name: "int64 upper bound", in: AmountInput{AmountMajor: "92233720368547758.07"}, want: 9223372036854775807, present: true},
		{name: "both set", in: AmountInput{Amount: int64Ptr(1), AmountMajor: "1"}, err: ErrAmountConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := tc.in.ResolveAmount()
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected err %v, got %v", tc.err, err)
			}
			if got != tc.want || ok != tc.present {
				t.Fatalf("expected (%d,%v), got (%d,%v)", tc.want, tc.present, got, ok)
			}
		})
	}
}

func TestInvoiceCreateRequest_ToParams(t *testing.T) {
	r := InvoiceCreateRequest{
		AmountInput:      AmountInput{AmountMajor: "12.50"},
		Ccy:              980,
		MerchantPaymInfo: map[string]any{"reference": "84d0070ee4e44667b31371d8f8813947"},
		RedirectURL:      " https://shop.example/return ",
		PaymentType:      "hold",
		Extra:            map[string]any{"tipsEmployeeId": "emp-1"},
		WithQR:           true,
	}
	params, err := r.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params["amount"] != int64(1250) || params["ccy"] != int64(980) {
		t.Fatalf("unexpected amount fields: %v", params)
	}
	if params["redirectUrl"] != "https://shop.example/return" || params["paymentType"] != "hold" {
		t.Fatalf("unexpected string fields: %v", params)
	}
	if params["tipsEmployeeId"] != "emp-1" {
		t.Fatalf("expected extra field forwarded: %v", params)
	}
	for _, k := range []string{"with_qr", "webHookUrl", "validity", "saveCardData", "qrId"} {
		if _, ok := params[k]; ok {
			t.Fatalf("did not expect %s in params: %v", k, params)
		}
	}
}

func TestInvoiceCreateRequest_ToParamsWithoutAmount(t *testing.T) {
	params, err := InvoiceCreateRequest{}.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := params["amount"]; ok {
		t.Fatalf("amount must be left for the gateway client to reject")
	}
}

func TestCaptureRequest_ResolveAmountPtr(t *testing.T) {
	p, err := CaptureRequest{}.ResolveAmountPtr()
	if err != nil || p != nil {
		t.Fatalf("expected nil amount, got %v %v", p, err)
	}
	p, err = CaptureRequest{AmountInput: AmountInput{AmountMajor: "3"}}.ResolveAmountPtr()
	if err != nil || p == nil || *p != 300 {
		t.Fatalf("expected 300, got %v %v", p, err)
	}
}

func TestDirectPaymentRequest_ToParams(t *testing.T) {
	r := DirectPaymentRequest{
		AmountInput:    AmountInput{Amount: int64Ptr(100)},
		CardData:       &CardDataRequest{Pan: "4242424242424242", Exp: "0642", Cvv: "123"},
		InitiationKind: "client",
	}
	params, err := r.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	card, ok := params["cardData"].(monopay.CardData)
	if !ok || card.Pan != "4242424242424242" || card.Cvv != "123" {
		t.Fatalf("unexpected card data: %#v", params["cardData"])
	}
	if params["initiationKind"] != "client" {
		t.Fatalf("unexpected params: %v", params)
	}

	params, err = DirectPaymentRequest{AmountInput: AmountInput{Amount: int64Ptr(100)}}.ToParams()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := params["cardData"]; ok {
		t.Fatalf("cardData must be absent when not supplied")
	}
}
