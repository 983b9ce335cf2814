package repository

import (
	"context"
	"errors"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderMessagesTableName = "order_messages"
	orderMessagesOrderIndex       = "order_id-index"
)

type orderMessageItem struct {
	ID        string `dynamodbav:"id"`
	OrderID   string `dynamodbav:"order_id"`
	OrgID     string `dynamodbav:"org_id"`
	UserID    string `dynamodbav:"user_id"`
	Message   string `dynamodbav:"message"`
	CreatedAt string `dynamodbav:"created_at"`
}

// OrderMessageDynamoRepository persists OrderMessage entities in DynamoDB.
// Messages are append-only; there is no update path.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type OrderMessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderMessageRepository = (*OrderMessageDynamoRepository)(nil)

func NewOrderMessageDynamoRepository(ddb *dynamodb.Client) *OrderMessageDynamoRepository {
	return &OrderMessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_MESSAGES_TABLE", defaultOrderMessagesTableName),
	}
}

func (r *OrderMessageDynamoRepository) Create(ctx context.Context, m entities.OrderMessage) (entities.OrderMessage, error) {
	it := toOrderMessageItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderMessage{}, err
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
		return entities.OrderMessage{}, err
	}
	return m, nil
}

func (r *OrderMessageDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.OrderMessage, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderMessage{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderMessage{}, nil
	}

	var it orderMessageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderMessage{}, err
	}
	if it.OrgID != orgID {
		return entities.OrderMessage{}, nil
	}
	return fromOrderMessageItem(it), nil
}

func (r *OrderMessageDynamoRepository) ListByOrder(ctx context.Context, orgID, orderID string) ([]entities.OrderMessage, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, orderMessagesOrderIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}

	messages := make([]entities.OrderMessage, 0, len(items))
	for _, raw := range items {
		var it orderMessageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.OrgID != orgID {
			continue
		}
		messages = append(messages, fromOrderMessageItem(it))
	}
	return messages, nil
}

func (r *OrderMessageDynamoRepository) Delete(ctx context.Context, orgID, id string) (entities.OrderMessage, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #org = :org"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#org": "org_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org": &types.AttributeValueMemberS{Value: orgID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OrderMessage{}, nil
		}
		return entities.OrderMessage{}, err
	}

	var it orderMessageItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderMessage{}, err
	}
	return fromOrderMessageItem(it), nil
}

func toOrderMessageItem(m entities.OrderMessage) orderMessageItem {
	return orderMessageItem{
		ID:        m.ID,
		OrderID:   m.OrderID,
		OrgID:     m.OrgID,
		UserID:    m.UserID,
		Message:   m.Message,
		CreatedAt: fmtTime(m.CreatedAt),
	}
}

func fromOrderMessageItem(it orderMessageItem) entities.OrderMessage {
	return entities.OrderMessage{
		ID:        it.ID,
		OrderID:   it.OrderID,
		OrgID:     it.OrgID,
		UserID:    it.UserID,
		Message:   it.Message,
		CreatedAt: parseTime(it.CreatedAt),
	}
}
