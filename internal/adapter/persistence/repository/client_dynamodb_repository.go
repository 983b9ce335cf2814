package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"service_engine_x/internal/domain/entities"
	"service_engine_x/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultClientsTableName = "users"
	clientsOrgIndex         = "org_id-index"
	clientsEmailIndex       = "email-index"
)

type clientItem struct {
	ID           string  `dynamodbav:"id"`
	OrgID        string  `dynamodbav:"org_id"`
	Email        string  `dynamodbav:"email"`
	NameF        string  `dynamodbav:"name_f,omitempty"`
	NameL        string  `dynamodbav:"name_l,omitempty"`
	Company      *string `dynamodbav:"company,omitempty"`
	Phone        *string `dynamodbav:"phone,omitempty"`
	Status       int     `dynamodbav:"status"`
	Balance      string  `dynamodbav:"balance"`
	Spent        string  `dynamodbav:"spent"`
	PasswordHash string  `dynamodbav:"password_hash,omitempty"`
	RoleID       string  `dynamodbav:"role_id,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
	DeletedAt    *string `dynamodbav:"deleted_at,omitempty"`
}

// ClientDynamoRepository persists Client entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)
//   - GSI: email-index (PK: email)
//
// Emails are normalized to lowercase before storage and lookup.

type ClientDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb *dynamodb.Client) *ClientDynamoRepository {
	return &ClientDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultClientsTableName),
	}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Client, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Client{}, err
	}
	if len(out.Item) == 0 {
		return entities.Client{}, nil
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Client{}, err
	}
	if it.OrgID != orgID {
		return entities.Client{}, nil
	}
	return fromClientItem(it), nil
}

func (r *ClientDynamoRepository) GetByEmail(ctx context.Context, orgID, email string) (entities.Client, error) {
	clients, err := r.queryByEmail(ctx, email)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range clients {
		if c.OrgID == orgID && c.DeletedAt == nil {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientDynamoRepository) GetByEmailAnyOrg(ctx context.Context, email string) (entities.Client, error) {
	clients, err := r.queryByEmail(ctx, email)
	if err != nil {
		return entities.Client{}, err
	}
	for _, c := range clients {
		if c.DeletedAt == nil {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

func (r *ClientDynamoRepository) queryByEmail(ctx context.Context, email string) ([]entities.Client, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, clientsEmailIndex, "email", email)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(items))
	for _, raw := range items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientItem(it))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Client, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, clientsOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	clients := make([]entities.Client, 0, len(items))
	for _, raw := range items {
		var it clientItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		clients = append(clients, fromClientItem(it))
	}
	return clients, nil
}

func (r *ClientDynamoRepository) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.UpdatedAt = time.Now().UTC()
	it := toClientItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Client{}, err
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
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}
	return c, nil
}

func (r *ClientDynamoRepository) SoftDelete(ctx context.Context, orgID, id string) (entities.Client, error) {
	now := fmtTime(time.Now().UTC())

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #org = :org"),
		UpdateExpression:    aws.String("SET #deleted_at = :now, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#org":        "org_id",
			"#deleted_at": "deleted_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":org": &types.AttributeValueMemberS{Value: orgID},
			":now": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Client{}, nil
		}
		return entities.Client{}, err
	}

	var it clientItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Client{}, err
	}
	return fromClientItem(it), nil
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:           c.ID,
		OrgID:        c.OrgID,
		Email:        c.Email,
		NameF:        c.NameF,
		NameL:        c.NameL,
		Company:      c.Company,
		Phone:        c.Phone,
		Status:       int(c.Status),
		Balance:      floatToString(c.Balance),
		Spent:        floatToString(c.Spent),
		PasswordHash: c.PasswordHash,
		RoleID:       c.RoleID,
		CreatedAt:    fmtTime(c.CreatedAt),
		UpdatedAt:    fmtTime(c.UpdatedAt),
		DeletedAt:    fmtTimePtr(c.DeletedAt),
	}
}

func fromClientItem(it clientItem) entities.Client {
	return entities.Client{
		ID:           it.ID,
		OrgID:        it.OrgID,
		Email:        it.Email,
		NameF:        it.NameF,
		NameL:        it.NameL,
		Company:      it.Company,
		Phone:        it.Phone,
		Status:       entities.ClientStatus(it.Status),
		Balance:      parseFloat(it.Balance),
		Spent:        parseFloat(it.Spent),
		PasswordHash: it.PasswordHash,
		RoleID:       it.RoleID,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
		DeletedAt:    parseTimePtr(it.DeletedAt),
	}
}
