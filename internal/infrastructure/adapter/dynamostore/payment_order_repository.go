package dynamostore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/credit-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/persistence"
)

const (
	DefaultTable     = "payment_orders"
	DefaultUserIndex = "user_id-index"

	// fixed width so that lexical order on the GSI sort key is chronological
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

type paymentOrderItem struct {
	GatewayOrderID   string `dynamodbav:"gateway_order_id"`
	ID               string `dynamodbav:"id"`
	UserID           string `dynamodbav:"user_id"`
	GatewayPaymentID string `dynamodbav:"gateway_payment_id,omitempty"`
	AmountMinorUnits int64  `dynamodbav:"amount_minor_units"`
	Currency         string `dynamodbav:"currency"`
	CreditsPurchased int64  `dynamodbav:"credits_purchased"`
	Status           string `dynamodbav:"status"`
	PaymentMethod    string `dynamodbav:"payment_method"`
	Receipt          string `dynamodbav:"receipt,omitempty"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// PaymentOrderRepository persists payment orders in DynamoDB.
//
// Table requirements:
//   - PK: gateway_order_id (string)
//   - GSI: user_id-index (PK: user_id, SK: created_at)
//
// Status changes are UpdateItem calls guarded by a ConditionExpression on the
// current status. Each write commits on its own; there is no shared transaction
// with the SQL credit ledger.
type PaymentOrderRepository struct {
	api       API
	table     string
	userIndex string
	logger    coreport.Logger
}

var _ persistence.PaymentOrderRepository = (*PaymentOrderRepository)(nil)

// NewPaymentOrderRepository creates a new PaymentOrderRepository
func NewPaymentOrderRepository(api API, table, userIndex string, logger coreport.Logger) *PaymentOrderRepository {
	if table == "" {
		table = DefaultTable
	}
	if userIndex == "" {
		userIndex = DefaultUserIndex
	}
	return &PaymentOrderRepository{api: api, table: table, userIndex: userIndex, logger: logger}
}

// Create stores a new order unless one exists for the gateway order id
func (r *PaymentOrderRepository) Create(ctx context.Context, order *entity.PaymentOrder) error {
	av, err := attributevalue.MarshalMap(toItem(order))
	if err != nil {
		return fmt.Errorf("marshal payment order: %w", err)
	}

	_, err = r.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{
			"#pk": "gateway_order_id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			r.logger.Warn("Duplicate payment order", map[string]any{"gateway_order_id": order.GatewayOrderID})
			return errs.ErrDuplicateOrder
		}
		return r.storeError("creating payment order", err, order.GatewayOrderID)
	}
	return nil
}

// GetByGatewayOrderID reads an order with a strongly consistent read
func (r *PaymentOrderRepository) GetByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.PaymentOrder, error) {
	out, err := r.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.table),
		Key:            orderKey(gatewayOrderID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, r.storeError("getting payment order", err, gatewayOrderID)
	}
	if len(out.Item) == 0 {
		return nil, errs.ErrOrderNotFound
	}
	return fromAttributes(out.Item)
}

// ClaimSuccess moves a CREATED order to SUCCESS with one conditional UpdateItem
func (r *PaymentOrderRepository) ClaimSuccess(ctx context.Context, gatewayOrderID, gatewayPaymentID string, at time.Time) (entity.ClaimOutcome, error) {
	return r.compareAndSet(ctx, gatewayOrderID, entity.StatusCreated, entity.StatusSuccess, gatewayPaymentID, at)
}

// CompareAndSetStatus moves an order from one status to another with one conditional UpdateItem
func (r *PaymentOrderRepository) CompareAndSetStatus(ctx context.Context, gatewayOrderID string, from, to entity.PaymentStatus, at time.Time) (entity.ClaimOutcome, error) {
	return r.compareAndSet(ctx, gatewayOrderID, from, to, "", at)
}

func (r *PaymentOrderRepository) compareAndSet(
	ctx context.Context,
	gatewayOrderID string,
	from, to entity.PaymentStatus,
	gatewayPaymentID string,
	at time.Time,
) (entity.ClaimOutcome, error) {
	update := "SET #status = :to, #updated = :now"
	names := map[string]string{
		"#status":  "status",
		"#updated": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":now":  &types.AttributeValueMemberS{Value: formatTime(at)},
	}
	if gatewayPaymentID != "" {
		update += ", #pid = :pid"
		names["#pid"] = "gateway_payment_id"
		values[":pid"] = &types.AttributeValueMemberS{Value: gatewayPaymentID}
	}

	out, err := r.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                           aws.String(r.table),
		Key:                                 orderKey(gatewayOrderID),
		UpdateExpression:                    aws.String(update),
		ConditionExpression:                 aws.String("#status = :from"),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           values,
		ReturnValues:                        types.ReturnValueAllOld,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if !errors.As(err, &ccf) {
			return entity.ClaimOutcome{}, r.storeError("updating payment order status", err, gatewayOrderID)
		}
		// a missing item fails the status condition too, but carries no attributes
		if len(ccf.Item) == 0 {
			return entity.ClaimOutcome{Result: entity.ClaimNotFound}, nil
		}
		current, err := fromAttributes(ccf.Item)
		if err != nil {
			return entity.ClaimOutcome{}, err
		}
		return entity.ClaimOutcome{Result: entity.ClaimAlreadyTerminal, PreviousStatus: current.Status, Order: current}, nil
	}

	order, err := fromAttributes(out.Attributes)
	if err != nil {
		return entity.ClaimOutcome{}, err
	}
	order.Status = to
	order.UpdatedAt = at
	if gatewayPaymentID != "" {
		order.GatewayPaymentID = gatewayPaymentID
	}
	return entity.ClaimOutcome{Result: entity.ClaimClaimed, PreviousStatus: from, Order: order}, nil
}

// ListByUser queries the user index newest first, following pagination
func (r *PaymentOrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PaymentOrder, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.table),
		IndexName:              aws.String(r.userIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		ScanIndexForward: aws.Bool(false),
	}

	orders := make([]*entity.PaymentOrder, 0)
	for {
		out, err := r.api.Query(ctx, input)
		if err != nil {
			return nil, r.storeError("listing payment orders", err, "")
		}
		for _, raw := range out.Items {
			order, err := fromAttributes(raw)
			if err != nil {
				return nil, err
			}
			orders = append(orders, order)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	slices.SortStableFunc(orders, func(a, b *entity.PaymentOrder) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	return orders, nil
}

// Transactional reports false: DynamoDB writes never join the SQL unit of work
func (r *PaymentOrderRepository) Transactional() bool {
	return false
}

func (r *PaymentOrderRepository) storeError(operation string, err error, gatewayOrderID string) error {
	r.logger.Error(fmt.Sprintf("DynamoDB error when %s", operation), map[string]any{
		"gateway_order_id": gatewayOrderID,
		"table":            r.table,
		"error":            err.Error(),
	})
	return fmt.Errorf("%w: %v", errs.ErrDatabaseConnection, err)
}

func orderKey(gatewayOrderID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"gateway_order_id": &types.AttributeValueMemberS{Value: gatewayOrderID},
	}
}

func toItem(o *entity.PaymentOrder) paymentOrderItem {
	return paymentOrderItem{
		GatewayOrderID:   o.GatewayOrderID,
		ID:               o.ID,
		UserID:           o.UserID,
		GatewayPaymentID: o.GatewayPaymentID,
		AmountMinorUnits: o.AmountMinorUnits,
		Currency:         o.Currency,
		CreditsPurchased: o.CreditsPurchased,
		Status:           string(o.Status),
		PaymentMethod:    o.PaymentMethod,
		Receipt:          o.Receipt,
		CreatedAt:        formatTime(o.CreatedAt),
		UpdatedAt:        formatTime(o.UpdatedAt),
	}
}

func fromAttributes(av map[string]types.AttributeValue) (*entity.PaymentOrder, error) {
	var it paymentOrderItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return nil, fmt.Errorf("unmarshal payment order: %w", err)
	}
	createdAt, _ := time.Parse(timeLayout, it.CreatedAt)
	updatedAt, _ := time.Parse(timeLayout, it.UpdatedAt)
	return &entity.PaymentOrder{
		ID:               it.ID,
		UserID:           it.UserID,
		GatewayOrderID:   it.GatewayOrderID,
		GatewayPaymentID: it.GatewayPaymentID,
		AmountMinorUnits: it.AmountMinorUnits,
		Currency:         it.Currency,
		CreditsPurchased: it.CreditsPurchased,
		Status:           entity.PaymentStatus(it.Status),
		PaymentMethod:    it.PaymentMethod,
		Receipt:          it.Receipt,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}
