package repository

import (
	"context"
	"errors"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrderTasksTableName = "order_tasks"
	orderTasksOrderIndex       = "order_id-index"
)

type orderTaskItem struct {
	ID          string  `dynamodbav:"id"`
	OrderID     string  `dynamodbav:"order_id"`
	OrgID       string  `dynamodbav:"org_id"`
	Name        string  `dynamodbav:"name"`
	Description *string `dynamodbav:"description,omitempty"`
	SortOrder   int     `dynamodbav:"sort_order"`
	IsPublic    bool    `dynamodbav:"is_public"`
	ForClient   bool    `dynamodbav:"for_client"`
	DueAt       *string `dynamodbav:"due_at,omitempty"`
	CompletedAt *string `dynamodbav:"completed_at,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
	UpdatedAt   string  `dynamodbav:"updated_at"`
}

// OrderTaskDynamoRepository persists OrderTask entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: order_id-index (PK: order_id)

type OrderTaskDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderTaskRepository = (*OrderTaskDynamoRepository)(nil)

func NewOrderTaskDynamoRepository(ddb *dynamodb.Client) *OrderTaskDynamoRepository {
	return &OrderTaskDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDER_TASKS_TABLE", defaultOrderTasksTableName),
	}
}

func (r *OrderTaskDynamoRepository) Create(ctx context.Context, t entities.OrderTask) (entities.OrderTask, error) {
	it := toOrderTaskItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderTask{}, err
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
		return entities.OrderTask{}, err
	}
	return t, nil
}

func (r *OrderTaskDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.OrderTask, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.OrderTask{}, err
	}
	if len(out.Item) == 0 {
		return entities.OrderTask{}, nil
	}

	var it orderTaskItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.OrderTask{}, err
	}
	if it.OrgID != orgID {
		return entities.OrderTask{}, nil
	}
	return fromOrderTaskItem(it), nil
}

func (r *OrderTaskDynamoRepository) ListByOrder(ctx context.Context, orgID, orderID string) ([]entities.OrderTask, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, orderTasksOrderIndex, "order_id", orderID)
	if err != nil {
		return nil, err
	}

	tasks := make([]entities.OrderTask, 0, len(items))
	for _, raw := range items {
		var it orderTaskItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.OrgID != orgID {
			continue
		}
		tasks = append(tasks, fromOrderTaskItem(it))
	}
	return tasks, nil
}

func (r *OrderTaskDynamoRepository) Update(ctx context.Context, t entities.OrderTask) (entities.OrderTask, error) {
	t.UpdatedAt = time.Now().UTC()
	it := toOrderTaskItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.OrderTask{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #org = :org"),
		ExpressionAttributeNames: map[string]string{
			"#id":  "id",
			"#org": "org_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org": &types.AttributeValueMemberS{Value: t.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.OrderTask{}, nil
		}
		return entities.OrderTask{}, err
	}
	return t, nil
}

func (r *OrderTaskDynamoRepository) Delete(ctx context.Context, orgID, id string) (entities.OrderTask, error) {
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
			return entities.OrderTask{}, nil
		}
		return entities.OrderTask{}, err
	}

	var it orderTaskItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.OrderTask{}, err
	}
	return fromOrderTaskItem(it), nil
}

func toOrderTaskItem(t entities.OrderTask) orderTaskItem {
	return orderTaskItem{
		ID:          t.ID,
		OrderID:     t.OrderID,
		OrgID:       t.OrgID,
		Name:        t.Name,
		Description: t.Description,
		SortOrder:   t.SortOrder,
		IsPublic:    t.IsPublic,
		ForClient:   t.ForClient,
		DueAt:       fmtTimePtr(t.DueAt),
		CompletedAt: fmtTimePtr(t.CompletedAt),
		CreatedAt:   fmtTime(t.CreatedAt),
		UpdatedAt:   fmtTime(t.UpdatedAt),
	}
}

func fromOrderTaskItem(it orderTaskItem) entities.OrderTask {
	return entities.OrderTask{
		ID:          it.ID,
		OrderID:     it.OrderID,
		OrgID:       it.OrgID,
		Name:        it.Name,
		Description: it.Description,
		SortOrder:   it.SortOrder,
		IsPublic:    it.IsPublic,
		ForClient:   it.ForClient,
		DueAt:       parseTimePtr(it.DueAt),
		CompletedAt: parseTimePtr(it.CompletedAt),
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
