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
	defaultConversationsTableName = "conversations"
	conversationsOrgIndex         = "org_id-index"
)

type conversationItem struct {
	ID        string  `dynamodbav:"id"`
	OrgID     string  `dynamodbav:"org_id"`
	UserID    string  `dynamodbav:"user_id"`
	Subject   string  `dynamodbav:"subject"`
	Status    int     `dynamodbav:"status"`
	ClosedAt  *string `dynamodbav:"closed_at,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// ConversationDynamoRepository persists Conversation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)

type ConversationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IConversationRepository = (*ConversationDynamoRepository)(nil)

func NewConversationDynamoRepository(ddb *dynamodb.Client) *ConversationDynamoRepository {
	return &ConversationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONVERSATIONS_TABLE", defaultConversationsTableName),
	}
}

func (r *ConversationDynamoRepository) Create(ctx context.Context, c entities.Conversation) (entities.Conversation, error) {
	it := toConversationItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Conversation{}, err
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
		return entities.Conversation{}, err
	}
	return c, nil
}

func (r *ConversationDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Conversation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Conversation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Conversation{}, nil
	}

	var it conversationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Conversation{}, err
	}
	if it.OrgID != orgID {
		return entities.Conversation{}, nil
	}
	return fromConversationItem(it), nil
}

func (r *ConversationDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Conversation, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, conversationsOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	conversations := make([]entities.Conversation, 0, len(items))
	for _, raw := range items {
		var it conversationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		conversations = append(conversations, fromConversationItem(it))
	}
	return conversations, nil
}

func (r *ConversationDynamoRepository) Update(ctx context.Context, c entities.Conversation) (entities.Conversation, error) {
	c.UpdatedAt = time.Now().UTC()
	it := toConversationItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Conversation{}, err
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
			":org": &types.AttributeValueMemberS{Value: c.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Conversation{}, nil
		}
		return entities.Conversation{}, err
	}
	return c, nil
}

func (r *ConversationDynamoRepository) Delete(ctx context.Context, orgID, id string) (entities.Conversation, error) {
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
			return entities.Conversation{}, nil
		}
		return entities.Conversation{}, err
	}

	var it conversationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Conversation{}, err
	}
	return fromConversationItem(it), nil
}

func toConversationItem(c entities.Conversation) conversationItem {
	return conversationItem{
		ID:        c.ID,
		OrgID:     c.OrgID,
		UserID:    c.UserID,
		Subject:   c.Subject,
		Status:    int(c.Status),
		ClosedAt:  fmtTimePtr(c.ClosedAt),
		CreatedAt: fmtTime(c.CreatedAt),
		UpdatedAt: fmtTime(c.UpdatedAt),
	}
}

func fromConversationItem(it conversationItem) entities.Conversation {
	return entities.Conversation{
		ID:        it.ID,
		OrgID:     it.OrgID,
		UserID:    it.UserID,
		Subject:   it.Subject,
		Status:    entities.ConversationStatus(it.Status),
		ClosedAt:  parseTimePtr(it.ClosedAt),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
