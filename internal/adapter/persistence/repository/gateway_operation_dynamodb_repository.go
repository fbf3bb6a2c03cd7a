package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"monopay/internal/domain/entities"
	"monopay/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultOperationsTableName = "gateway_operations"
	operationsInvoiceIDIndex   = "invoice_id-index"
)

var ErrOperationAlreadyExists = errors.New("gateway operation already exists")

// DynamoAPI is the part of *dynamodb.Client the journal needs.
type DynamoAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type gatewayOperationItem struct {
	ID            string `dynamodbav:"id"`
	Operation     string `dynamodbav:"operation"`
	InvoiceID     string `dynamodbav:"invoice_id,omitempty"`
	Outcome       string `dynamodbav:"outcome"`
	InvoiceStatus string `dynamodbav:"invoice_status,omitempty"`
	PageURL       string `dynamodbav:"page_url,omitempty"`
	ErrorKind     string `dynamodbav:"error_kind,omitempty"`
	ErrorCode     string `dynamodbav:"error_code,omitempty"`
	HTTPStatus    int    `dynamodbav:"http_status,omitempty"`
	Date          string `dynamodbav:"date"`
}

// GatewayOperationDynamoRepository persists the gateway operation journal in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//
// invoice_id is omitted for merchant-level calls so those items stay out of the sparse index.

type GatewayOperationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IGatewayOperationRepository = (*GatewayOperationDynamoRepository)(nil)

func NewGatewayOperationDynamoRepository(ddb DynamoAPI, tableName string) *GatewayOperationDynamoRepository {
	if tableName == "" {
		tableName = DefaultOperationsTableName
	}
	return &GatewayOperationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *GatewayOperationDynamoRepository) Create(ctx context.Context, op entities.GatewayOperation) (entities.GatewayOperation, error) {
	av, err := attributevalue.MarshalMap(toGatewayOperationItem(op))
	if err != nil {
		return entities.GatewayOperation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return entities.GatewayOperation{}, ErrOperationAlreadyExists
		}
		return entities.GatewayOperation{}, err
	}
	return op, nil
}

// ListByInvoiceID returns the invoice's journal oldest first, across all result pages.
func (r *GatewayOperationDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.GatewayOperation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(operationsInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})

	ops := make([]entities.GatewayOperation, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it gatewayOperationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			ops = append(ops, fromGatewayOperationItem(it))
		}
	}

	sort.SliceStable(ops, func(i, j int) bool { return ops[i].Date.Before(ops[j].Date) })
	return ops, nil
}

func toGatewayOperationItem(op entities.GatewayOperation) gatewayOperationItem {
	return gatewayOperationItem{
		ID:            op.ID,
		Operation:     string(op.Operation),
		InvoiceID:     op.InvoiceID,
		Outcome:       string(op.Outcome),
		InvoiceStatus: op.InvoiceStatus,
		PageURL:       op.PageURL,
		ErrorKind:     op.ErrorKind,
		ErrorCode:     op.ErrorCode,
		HTTPStatus:    op.HTTPStatus,
		Date:          op.Date.UTC().Format(time.RFC3339Nano),
	}
}

func fromGatewayOperationItem(it gatewayOperationItem) entities.GatewayOperation {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	return entities.GatewayOperation{
		ID:            it.ID,
		Operation:     entities.OperationType(it.Operation),
		InvoiceID:     it.InvoiceID,
		Outcome:       entities.OperationOutcome(it.Outcome),
		InvoiceStatus: it.InvoiceStatus,
		PageURL:       it.PageURL,
		ErrorKind:     it.ErrorKind,
		ErrorCode:     it.ErrorCode,
		HTTPStatus:    it.HTTPStatus,
		Date:          dt,
	}
}
