package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"printlite/internal/domain/entities"
	"printlite/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderFileItem struct {
	Name  string `dynamodbav:"name"`
	Size  int64  `dynamodbav:"size"`
	Pages int    `dynamodbav:"pages"`
}

type orderItem struct {
	ID                  string          `dynamodbav:"id"`
	CustomerName        string          `dynamodbav:"customer_name"`
	Email               string          `dynamodbav:"email"`
	Phone               string          `dynamodbav:"phone"`
	DeliveryAddress     string          `dynamodbav:"delivery_address"`
	Files               []orderFileItem `dynamodbav:"files"`
	TotalPages          int             `dynamodbav:"total_pages"`
	PageRange           string          `dynamodbav:"page_range"`
	SelectedPageCount   int             `dynamodbav:"selected_page_count"`
	PaperType           string          `dynamodbav:"paper_type"`
	ColorMode           string          `dynamodbav:"color_mode"`
	Sides               string          `dynamodbav:"sides"`
	Binding             string          `dynamodbav:"binding"`
	Copies              int             `dynamodbav:"copies"`
	Subtotal            string          `dynamodbav:"subtotal"`
	TaxAmount           string          `dynamodbav:"tax_amount"`
	Total               string          `dynamodbav:"total"`
	TaxRate             string          `dynamodbav:"tax_rate"`
	Currency            string          `dynamodbav:"currency"`
	PaymentMethod       string          `dynamodbav:"payment_method"`
	PaymentStatus       string          `dynamodbav:"payment_status"`
	Status              string          `dynamodbav:"status"`
	SpecialInstructions string          `dynamodbav:"special_instructions"`
	AdminNotes          string          `dynamodbav:"admin_notes"`
	CreatedAt           string          `dynamodbav:"created_at"`
	UpdatedAt           string          `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Monetary amounts and timestamps are stored as strings to keep them exact
// across marshalling round trips.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// List scans the table and sorts newest-first in memory. The table is small
// enough for a dashboard; a created_at GSI would replace the scan if volume
// ever demands it.
func (r *OrderDynamoRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]entities.Order, error) {
	input := &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	}

	var exprParts []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if filter.Status != "" {
		exprParts = append(exprParts, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Email != "" {
		exprParts = append(exprParts, "#email = :email")
		names["#email"] = "email"
		values[":email"] = &types.AttributeValueMemberS{Value: filter.Email}
	}
	if len(exprParts) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprParts, " AND "))
		input.ExpressionAttributeNames = names
		input.ExpressionAttributeValues = values
	}

	var items []orderItem
	for {
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		var page []orderItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}

	orders := make([]entities.Order, 0, len(items))
	for _, it := range items {
		orders = append(orders, fromOrderItem(it))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if filter.Limit > 0 && len(orders) > filter.Limit {
		orders = orders[:filter.Limit]
	}
	return orders, nil
}

func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatus, adminNotes string) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		if adminNotes != "" {
			expr += ", #admin_notes = :admin_notes"
			vals[":admin_notes"] = &types.AttributeValueMemberS{Value: adminNotes}
			names["#admin_notes"] = "admin_notes"
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Order, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_status = :payment_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":payment_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
		}
		return expr, vals, names
	})
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *OrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Order, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}
	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	files := make([]orderFileItem, 0, len(o.Files))
	for _, f := range o.Files {
		files = append(files, orderFileItem{Name: f.Name, Size: f.Size, Pages: f.Pages})
	}
	return orderItem{
		ID:                  o.ID,
		CustomerName:        o.CustomerName,
		Email:               o.Email,
		Phone:               o.Phone,
		DeliveryAddress:     o.DeliveryAddress,
		Files:               files,
		TotalPages:          o.TotalPages,
		PageRange:           o.PageRange,
		SelectedPageCount:   o.SelectedPageCount,
		PaperType:           string(o.Settings.PaperType),
		ColorMode:           string(o.Settings.ColorMode),
		Sides:               string(o.Settings.Sides),
		Binding:             string(o.Settings.Binding),
		Copies:              o.Settings.Copies,
		Subtotal:            floatToString(o.Price.Subtotal),
		TaxAmount:           floatToString(o.Price.TaxAmount),
		Total:               floatToString(o.Price.Total),
		TaxRate:             floatToString(o.Price.TaxRate),
		Currency:            o.Price.Currency,
		PaymentMethod:       string(o.PaymentMethod),
		PaymentStatus:       string(o.PaymentStatus),
		Status:              string(o.Status),
		SpecialInstructions: o.SpecialInstructions,
		AdminNotes:          o.AdminNotes,
		CreatedAt:           o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:           o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	files := make([]entities.FileDetail, 0, len(it.Files))
	for _, f := range it.Files {
		files = append(files, entities.FileDetail{Name: f.Name, Size: f.Size, Pages: f.Pages})
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
	taxAmount, _ := strconv.ParseFloat(it.TaxAmount, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)
	taxRate, _ := strconv.ParseFloat(it.TaxRate, 64)
	return entities.Order{
		ID:                it.ID,
		CustomerName:      it.CustomerName,
		Email:             it.Email,
		Phone:             it.Phone,
		DeliveryAddress:   it.DeliveryAddress,
		Files:             files,
		TotalPages:        it.TotalPages,
		PageRange:         it.PageRange,
		SelectedPageCount: it.SelectedPageCount,
		Settings: entities.PrintSettings{
			PaperType: entities.PaperType(it.PaperType),
			ColorMode: entities.ColorMode(it.ColorMode),
			Sides:     entities.PrintSides(it.Sides),
			Binding:   entities.Binding(it.Binding),
			Copies:    it.Copies,
		},
		Price: entities.PriceBreakdown{
			Subtotal:  subtotal,
			TaxAmount: taxAmount,
			Total:     total,
			TaxRate:   taxRate,
			Currency:  it.Currency,
		},
		PaymentMethod:       entities.PaymentMethod(it.PaymentMethod),
		PaymentStatus:       entities.PaymentStatus(it.PaymentStatus),
		Status:              entities.OrderStatus(it.Status),
		SpecialInstructions: it.SpecialInstructions,
		AdminNotes:          it.AdminNotes,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
