package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"monopay/internal/domain/entities"
	mock_interfaces "monopay/internal/usecase/interfaces/mocks"
	"monopay/pkg/monopay"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Validations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty invoice id never reaches the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		if _, err := uc.Status(ctx, "  "); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
		if _, err := uc.Refund(ctx, ""); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
		if err := uc.Cancel(ctx, ""); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
		if _, err := uc.Capture(ctx, "", nil, nil); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
		if _, err := uc.QRCode(ctx, ""); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
		if _, err := uc.Operations(ctx, ""); !errors.Is(err, ErrInvalidInvoiceID) {
			t.Fatalf("expected ErrInvalidInvoiceID, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)

		if _, err := uc.Create(ctx, map[string]any{"amount": 100}, false); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
		if _, err := uc.Receipt(ctx, "inv-1"); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
		if _, err := uc.DirectPayment(ctx, map[string]any{}); !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("operations without journal", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, nil)
		if _, err := uc.Operations(ctx, "inv-1"); !errors.Is(err, ErrJournalNotConfigured) {
			t.Fatalf("expected ErrJournalNotConfigured, got %v", err)
		}
	})
}

func TestInvoiceUseCase_Create(t *testing.T) {
	ctx := context.Background()
	params := map[string]any{"amount": int64(4200), "ccy": 980}

	t.Run("success is journaled with page url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
		uc := NewInvoiceUseCase(gw, repo, nil, nil)

		gw.EXPECT().CreateInvoice(gomock.Any(), params).Return(entities.Invoice{InvoiceID: "inv-1", PageURL: "https://pay.mbnk.biz/inv-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, op entities.GatewayOperation) (entities.GatewayOperation, error) {
			if op.Operation != entities.OperationCreate || op.InvoiceID != "inv-1" || op.Outcome != entities.OutcomeSuccess {
				t.Fatalf("unexpected journal entry: %+v", op)
			}
			if op.PageURL != "https://pay.mbnk.biz/inv-1" || op.ID == "" || op.Date.IsZero() {
				t.Fatalf("unexpected journal entry: %+v", op)
			}
			return op, nil
		})

		inv, err := uc.Create(ctx, params, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InvoiceID != "inv-1" || inv.QRCode != nil {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("with qr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		qr := mock_interfaces.NewMockIQRGenerator(ctrl)
		uc := NewInvoiceUseCase(gw, nil, qr, nil)

		gw.EXPECT().CreateInvoice(gomock.Any(), params).Return(entities.Invoice{InvoiceID: "inv-1", PageURL: "https://pay.mbnk.biz/inv-1"}, nil)
		qr.EXPECT().Generate("https://pay.mbnk.biz/inv-1").Return([]byte("png"), nil)

		inv, err := uc.Create(ctx, params, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(inv.QRCode) != "png" {
			t.Fatalf("expected qr code, got %q", inv.QRCode)
		}
	})

	t.Run("qr failure keeps the invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		qr := mock_interfaces.NewMockIQRGenerator(ctrl)
		uc := NewInvoiceUseCase(gw, nil, qr, nil)

		gw.EXPECT().CreateInvoice(gomock.Any(), params).Return(entities.Invoice{InvoiceID: "inv-1", PageURL: "https://pay.mbnk.biz/inv-1"}, nil)
		qr.EXPECT().Generate(gomock.Any()).Return(nil, errors.New("too long"))

		inv, err := uc.Create(ctx, params, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InvoiceID != "inv-1" || inv.QRCode != nil {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})

	t.Run("gateway error is journaled and returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
		uc := NewInvoiceUseCase(gw, repo, nil, nil)

		gwErr := &monopay.Error{Kind: monopay.KindGateway, Message: "bad amount", StatusCode: http.StatusBadRequest}
		gw.EXPECT().CreateInvoice(gomock.Any(), params).Return(entities.Invoice{}, gwErr)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, op entities.GatewayOperation) (entities.GatewayOperation, error) {
			if op.Outcome != entities.OutcomeFailure || op.ErrorKind != string(monopay.KindGateway) || op.HTTPStatus != http.StatusBadRequest {
				t.Fatalf("unexpected journal entry: %+v", op)
			}
			return op, nil
		})

		_, err := uc.Create(ctx, params, false)
		if !errors.Is(err, monopay.ErrGateway) {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})

	t.Run("journal failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
		uc := NewInvoiceUseCase(gw, repo, nil, nil)

		gw.EXPECT().CreateInvoice(gomock.Any(), params).Return(entities.Invoice{InvoiceID: "inv-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GatewayOperation{}, errors.New("ddb down"))

		if _, err := uc.Create(ctx, params, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestInvoiceUseCase_Operations(t *testing.T) {
	ctx := context.Background()

	t.Run("status trims id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		gw.EXPECT().InvoiceStatus(gomock.Any(), "inv-1").Return(entities.Invoice{InvoiceID: "inv-1", Status: "success"}, nil)

		inv, err := uc.Status(ctx, " inv-1 ")
		if err != nil || inv.Status != "success" {
			t.Fatalf("unexpected result: %+v %v", inv, err)
		}
	})

	t.Run("refund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		gw.EXPECT().Refund(gomock.Any(), "inv-1").Return(entities.Invoice{InvoiceID: "inv-1", Status: "processing"}, nil)

		inv, err := uc.Refund(ctx, "inv-1")
		if err != nil || inv.Status != "processing" {
			t.Fatalf("unexpected result: %+v %v", inv, err)
		}
	})

	t.Run("refund contract violation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		gw.EXPECT().Refund(gomock.Any(), "inv-1").Return(entities.Invoice{}, &monopay.Error{Kind: monopay.KindContractViolation, Code: monopay.CodeInvoiceRefundFailed})

		_, err := uc.Refund(ctx, "inv-1")
		if monopay.CodeOf(err) != monopay.CodeInvoiceRefundFailed {
			t.Fatalf("expected refund failure, got %v", err)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		gw.EXPECT().Cancel(gomock.Any(), "inv-1").Return(nil)

		if err := uc.Cancel(ctx, "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("capture passes amount and items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		amount := int64(1500)
		items := []any{map[string]any{"name": "Coffee", "qty": 1}}
		gw.EXPECT().Capture(gomock.Any(), "inv-1", &amount, items).Return(entities.Invoice{InvoiceID: "inv-1", Status: "hold"}, nil)

		inv, err := uc.Capture(ctx, "inv-1", &amount, items)
		if err != nil || inv.Status != "hold" {
			t.Fatalf("unexpected result: %+v %v", inv, err)
		}
	})

	t.Run("receipt and fiscal checks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		uc := NewInvoiceUseCase(gw, nil, nil, nil)

		gw.EXPECT().Receipt(gomock.Any(), "inv-1").Return([]byte("%PDF"), nil)
		gw.EXPECT().FiscalChecks(gomock.Any(), "inv-1").Return([]any{map[string]any{"id": "chk-1"}}, nil)

		file, err := uc.Receipt(ctx, "inv-1")
		if err != nil || string(file) != "%PDF" {
			t.Fatalf("unexpected receipt: %q %v", file, err)
		}
		checks, err := uc.FiscalChecks(ctx, "inv-1")
		if err != nil || len(checks) != 1 {
			t.Fatalf("unexpected checks: %v %v", checks, err)
		}
	})

	t.Run("direct payment journals tds url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
		uc := NewInvoiceUseCase(gw, repo, nil, nil)

		params := map[string]any{"amount": 100, "cardData": map[string]any{"pan": "4242", "exp": "0642", "cvv": "123"}}
		gw.EXPECT().DirectPayment(gomock.Any(), params).Return(entities.Invoice{InvoiceID: "inv-9", Status: "processing", PageURL: "https://tds.example/inv-9"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, op entities.GatewayOperation) (entities.GatewayOperation, error) {
			if op.Operation != entities.OperationDirectPayment || op.InvoiceID != "inv-9" || op.PageURL != "https://tds.example/inv-9" {
				t.Fatalf("unexpected journal entry: %+v", op)
			}
			return op, nil
		})

		inv, err := uc.DirectPayment(ctx, params)
		if err != nil || inv.InvoiceID != "inv-9" {
			t.Fatalf("unexpected result: %+v %v", inv, err)
		}
	})
}

func TestInvoiceUseCase_QRCode(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("page url from latest journal entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
		qr := mock_interfaces.NewMockIQRGenerator(ctrl)
		uc := NewInvoiceUseCase(gw, repo, qr, nil)

		repo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.GatewayOperation{
			{Operation: entities.OperationCreate, Outcome: entities.OutcomeSuccess, PageURL: "https://old", Date: now.Add(-time.Hour)},
			{Operation: entities.OperationDirectPayment, Outcome: entities.OutcomeFailure, PageURL: "https://ignored", Date: now.Add(time.Hour)},
			{Operation: entities.OperationDirectPayment, Outcome: entities.OutcomeSuccess, PageURL: "https://new", Date: now},
		}, nil)
		qr.EXPECT().Generate("https://new").Return([]byte("png"), nil)

		png, err := uc.QRCode(ctx, "inv-1")
		if err != nil || string(png) != "png" {
			t.Fatalf("unexpected result: %q %v", png, err)
		}
	})

	t.Run("falls back to gateway status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		qr := mock_interfaces.NewMockIQRGenerator(ctrl)
		uc := NewInvoiceUseCase(gw, nil, qr, nil)

		gw.EXPECT().InvoiceStatus(gomock.Any(), "inv-1").Return(entities.Invoice{InvoiceID: "inv-1", PageURL: "https://pay.mbnk.biz/inv-1"}, nil)
		qr.EXPECT().Generate("https://pay.mbnk.biz/inv-1").Return([]byte("png"), nil)

		if _, err := uc.QRCode(ctx, "inv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no page url anywhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gw := mock_interfaces.NewMockIAcquiringGateway(ctrl)
		repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
		qr := mock_interfaces.NewMockIQRGenerator(ctrl)
		uc := NewInvoiceUseCase(gw, repo, qr, nil)

		repo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return(nil, errors.New("ddb down"))
		gw.EXPECT().InvoiceStatus(gomock.Any(), "inv-1").Return(entities.Invoice{InvoiceID: "inv-1", Status: "success"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.GatewayOperation{}, nil)

		if _, err := uc.QRCode(ctx, "inv-1"); !errors.Is(err, ErrQRCodeUnavailable) {
			t.Fatalf("expected ErrQRCodeUnavailable, got %v", err)
		}
	})
}

func TestInvoiceUseCase_OperationsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIGatewayOperationRepository(ctrl)
	uc := NewInvoiceUseCase(nil, repo, nil, nil)

	repo.EXPECT().ListByInvoiceID(gomock.Any(), "inv-1").Return([]entities.GatewayOperation{{ID: "op-1"}}, nil)

	ops, err := uc.Operations(context.Background(), "inv-1")
	if err != nil || len(ops) != 1 || ops[0].ID != "op-1" {
		t.Fatalf("unexpected result: %+v %v", ops, err)
	}
}
