package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/order-batch-service/internal/domain"
	pkgconfig "github.com/cloud-wave-best-zizon/order-batch-service/pkg/config"
)

const dateLayout = "2006-01-02"

var ErrOrderNotFound = errors.New("order not found")

// DynamoDBAPI is the part of the DynamoDB client the repository uses.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ItemRecord is one archived order line.
type ItemRecord struct {
	ProductName string  `dynamodbav:"product_name" json:"product_name"`
	ProductKind string  `dynamodbav:"product_kind" json:"product_kind"`
	UnitPrice   float64 `dynamodbav:"unit_price" json:"unit_price"`
	Quantity    int     `dynamodbav:"quantity" json:"quantity"`
	TotalPrice  float64 `dynamodbav:"total_price" json:"total_price"`
}

// OrderRecord is a read-only snapshot of an order taken after a change.
type OrderRecord struct {
	OrderID      string       `dynamodbav:"order_id" json:"order_id"`
	Version      int64        `dynamodbav:"version" json:"version"`
	BatchName    string       `dynamodbav:"batch_name" json:"batch_name"`
	UserName     string       `dynamodbav:"user_name" json:"user_name"`
	UserEmail    string       `dynamodbav:"user_email" json:"user_email"`
	OrderDate    string       `dynamodbav:"order_date" json:"order_date"`
	DeliveryDate string       `dynamodbav:"delivery_date,omitempty" json:"delivery_date,omitempty"`
	Items        []ItemRecord `dynamodbav:"items" json:"items"`
	TotalPrice   float64      `dynamodbav:"total_price" json:"total_price"`
	Tax          float64      `dynamodbav:"tax" json:"tax"`
	Bill         string       `dynamodbav:"bill" json:"bill"`
	ArchivedAt   time.Time    `dynamodbav:"archived_at" json:"archived_at"`
}

// NewOrderRecord snapshots order as a member of batchName.
func NewOrderRecord(batchName string, order *domain.Order, archivedAt time.Time) OrderRecord {
	rec := OrderRecord{
		OrderID:    order.ID(),
		BatchName:  batchName,
		OrderDate:  order.OrderDate().Format(dateLayout),
		Items:      make([]ItemRecord, 0, order.ItemCount()),
		TotalPrice: order.TotalPrice(),
		Tax:        order.TaxValue(order.TotalPrice()),
		Bill:       order.Bill(),
		ArchivedAt: archivedAt.UTC(),
	}
	if user := order.User(); user != nil {
		rec.UserName = user.Name
		rec.UserEmail = user.Email
	}
	if d := order.DeliveryDate(); d != nil {
		rec.DeliveryDate = d.Format(dateLayout)
	}
	for _, item := range order.Items() {
		rec.Items = append(rec.Items, ItemRecord{
			ProductName: item.Product().Name(),
			ProductKind: string(item.Product().Kind()),
			UnitPrice:   item.Product().Price(),
			Quantity:    item.Quantity(),
			TotalPrice:  item.TotalPrice(),
		})
	}
	return rec
}

type OrderRepository struct {
	client    DynamoDBAPI
	tableName string
}

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.DynamoDBEndpoint)
		}
	}), nil
}

func NewOrderRepository(client DynamoDBAPI, tableName string) *OrderRepository {
	return &OrderRepository{
		client:    client,
		tableName: tableName,
	}
}

func orderKey(orderID string) string {
	return fmt.Sprintf("ORDER#%s", orderID)
}

// SaveOrder writes rec unless the table already holds a snapshot of the same
// order with an equal or higher Version. A skipped write is not an error.
func (r *OrderRepository) SaveOrder(ctx context.Context, rec OrderRecord) error {
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}

	av["PK"] = &types.AttributeValueMemberS{Value: orderKey(rec.OrderID)}
	av["SK"] = &types.AttributeValueMemberS{Value: "METADATA"}
	av["GSI1PK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("BATCH#%s", rec.BatchName)}
	av["GSI1SK"] = &types.AttributeValueMemberS{Value: fmt.Sprintf("ORDER#%s", rec.OrderDate)}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR #version < :v"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: strconv.FormatInt(rec.Version, 10)},
		},
	})
	var stale *types.ConditionalCheckFailedException
	if errors.As(err, &stale) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to put item: %w", err)
	}

	return nil
}

func (r *OrderRepository) GetOrder(ctx context.Context, orderID string) (*OrderRecord, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: orderKey(orderID)},
			"SK": &types.AttributeValueMemberS{Value: "METADATA"},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, ErrOrderNotFound
	}

	var rec OrderRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}
