package interfaces

import (
	"context"

	"monopay/internal/domain/entities"
)

//go:generate mockgen -source=gateway_operation_repository_interface.go -destination=mocks/gateway_operation_repository_mock.go -package=mock_interfaces

// IGatewayOperationRepository persists the journal of gateway calls.
type IGatewayOperationRepository interface {
	Create(ctx context.Context, op entities.GatewayOperation) (entities.GatewayOperation, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.GatewayOperation, error)
}
