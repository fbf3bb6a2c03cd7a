package response

import (
	"testing"
	"time"

	"monopay/internal/domain/entities"
)

func TestFromInvoice(t *testing.T) {
	inv := entities.Invoice{
		InvoiceID:   "inv-1",
		Status:      "success",
		Amount:      4250,
		Ccy:         980,
		FinalAmount: 4200,
		QRCode:      []byte("png"),
		Raw:         map[string]any{"invoiceId": "inv-1", "tipsInfo": map[string]any{"amount": 50}},
	}
	got := FromInvoice(inv)
	if got.AmountDisplay != "42.50" || got.FinalAmountDisplay != "42.00" {
		t.Fatalf("unexpected display amounts: %+v", got)
	}
	if got.QRCode != "cG5n" {
		t.Fatalf("expected base64 qr code, got %q", got.QRCode)
	}
	if _, ok := got.Details["tipsInfo"]; !ok {
		t.Fatalf("expected raw details kept: %+v", got.Details)
	}

	empty := FromInvoice(entities.Invoice{InvoiceID: "inv-2"})
	if empty.AmountDisplay != "" || empty.QRCode != "" {
		t.Fatalf("expected empty optional fields: %+v", empty)
	}
}

func TestFormatMinor(t *testing.T) {
	cases := map[int64]string{1: "0.01", 100: "1.00", 123456: "1234.56", -250: "-2.50"}
	for in, want := range cases {
		if got := FormatMinor(in); got != want {
			t.Fatalf("FormatMinor(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFromGatewayOperations(t *testing.T) {
	now := time.Now().UTC()
	got := FromGatewayOperations([]entities.GatewayOperation{
		{ID: "op-1", Operation: entities.OperationRefund, InvoiceID: "inv-1", Outcome: entities.OutcomeFailure, ErrorKind: "GATEWAY_ERROR", HTTPStatus: 400, Date: now},
	})
	if len(got) != 1 || got[0].Operation != "refund" || got[0].Outcome != "failure" || got[0].HTTPStatus != 400 {
		t.Fatalf("unexpected response: %+v", got)
	}
	if empty := FromGatewayOperations(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}
