package usecase

import (
	"context"
	"errors"
	"strings"

	"monopay/internal/domain/entities"
	"monopay/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidStatementRange = errors.New("invalid statement range")

type IMerchantUseCase interface {
	Details(ctx context.Context) (entities.Merchant, error)
	Statement(ctx context.Context, from, to int64, code string) ([]any, error)
	PublicKey(ctx context.Context) (string, error)
}

type MerchantUseCase struct {
	gateway interfaces.IAcquiringGateway
	journal operationJournal
	logger  *zap.Logger
}

var _ IMerchantUseCase = (*MerchantUseCase)(nil)

func NewMerchantUseCase(gateway interfaces.IAcquiringGateway, repo interfaces.IGatewayOperationRepository, logger *zap.Logger) *MerchantUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MerchantUseCase{gateway: gateway, journal: newOperationJournal(repo, logger), logger: logger}
}

func (u *MerchantUseCase) Details(ctx context.Context) (entities.Merchant, error) {
	if u.gateway == nil {
		return entities.Merchant{}, ErrGatewayNotConfigured
	}
	m, err := u.gateway.Merchant(ctx)
	u.journal.record(ctx, entities.OperationMerchant, "", entities.Invoice{}, err)
	if err != nil {
		u.logger.Warn("[payment][usecase] merchant load failed", zap.Error(err))
		return entities.Merchant{}, err
	}
	return m, nil
}

// Statement lists gateway invoices created since from (unix seconds). A zero to means "now".
func (u *MerchantUseCase) Statement(ctx context.Context, from, to int64, code string) ([]any, error) {
	if from <= 0 || to < 0 || (to != 0 && to < from) {
		return nil, ErrInvalidStatementRange
	}
	if u.gateway == nil {
		return nil, ErrGatewayNotConfigured
	}
	list, err := u.gateway.Statement(ctx, from, to, strings.TrimSpace(code))
	u.journal.record(ctx, entities.OperationStatement, "", entities.Invoice{}, err)
	if err != nil {
		u.logger.Warn("[payment][usecase] statement failed", zap.Int64("from", from), zap.Int64("to", to), zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (u *MerchantUseCase) PublicKey(ctx context.Context) (string, error) {
	if u.gateway == nil {
		return "", ErrGatewayNotConfigured
	}
	key, err := u.gateway.PublicKey(ctx)
	u.journal.record(ctx, entities.OperationPublicKey, "", entities.Invoice{}, err)
	if err != nil {
		return "", err
	}
	return key, nil
}
