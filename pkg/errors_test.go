package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dial tcp: timeout")
	e := NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable", cause, http.StatusGatewayTimeout)

	if !errors.Is(e, cause) {
		t.Fatalf("expected cause to be unwrapped")
	}
	if got := e.ToHTTPError(); got.Code != "PAYMENT_PROVIDER_UNAVAILABLE" || got.Message != "Payment provider unavailable" {
		t.Fatalf("unexpected http error: %+v", got)
	}
	if e.Error() != "PAYMENT_PROVIDER_UNAVAILABLE: Payment provider unavailable: dial tcp: timeout" {
		t.Fatalf("unexpected message: %s", e.Error())
	}

	simple := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if simple.HTTPStatus != http.StatusBadRequest || simple.Err != nil {
		t.Fatalf("unexpected simple error: %+v", simple)
	}
}
