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
	defaultAPITokensTableName     = "api_tokens"
	defaultOrganizationsTableName = "organizations"
	apiTokensHashIndex            = "token_hash-index"
)

type apiTokenItem struct {
	ID         string  `dynamodbav:"id"`
	OrgID      string  `dynamodbav:"org_id"`
	UserID     string  `dynamodbav:"user_id"`
	Name       string  `dynamodbav:"name"`
	TokenHash  string  `dynamodbav:"token_hash"`
	ExpiresAt  *string `dynamodbav:"expires_at,omitempty"`
	LastUsedAt *string `dynamodbav:"last_used_at,omitempty"`
	CreatedAt  string  `dynamodbav:"created_at"`
}

// APITokenDynamoRepository persists APIToken entities in DynamoDB. Only the
// SHA-256 hash of the raw token is ever stored or queried.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: token_hash-index (PK: token_hash)

type APITokenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAPITokenRepository = (*APITokenDynamoRepository)(nil)

func NewAPITokenDynamoRepository(ddb *dynamodb.Client) *APITokenDynamoRepository {
	return &APITokenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("API_TOKENS_TABLE", defaultAPITokensTableName),
	}
}

func (r *APITokenDynamoRepository) Create(ctx context.Context, t entities.APIToken) (entities.APIToken, error) {
	av, err := attributevalue.MarshalMap(toAPITokenItem(t))
	if err != nil {
		return entities.APIToken{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.APIToken{}, err
	}
	return t, nil
}

func (r *APITokenDynamoRepository) GetByHash(ctx context.Context, tokenHash string) (entities.APIToken, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, apiTokensHashIndex, "token_hash", tokenHash)
	if err != nil {
		return entities.APIToken{}, err
	}
	if len(items) == 0 {
		return entities.APIToken{}, nil
	}

	var it apiTokenItem
	if err := attributevalue.UnmarshalMap(items[0], &it); err != nil {
		return entities.APIToken{}, err
	}
	return fromAPITokenItem(it), nil
}

func (r *APITokenDynamoRepository) TouchLastUsed(ctx context.Context, id string, usedAt time.Time) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #last_used_at = :at"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#last_used_at": "last_used_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":at": &types.AttributeValueMemberS{Value: fmtTime(usedAt)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
	}
	return err
}

func toAPITokenItem(t entities.APIToken) apiTokenItem {
	return apiTokenItem{
		ID:         t.ID,
		OrgID:      t.OrgID,
		UserID:     t.UserID,
		Name:       t.Name,
		TokenHash:  t.TokenHash,
		ExpiresAt:  fmtTimePtr(t.ExpiresAt),
		LastUsedAt: fmtTimePtr(t.LastUsedAt),
		CreatedAt:  fmtTime(t.CreatedAt),
	}
}

func fromAPITokenItem(it apiTokenItem) entities.APIToken {
	return entities.APIToken{
		ID:         it.ID,
		OrgID:      it.OrgID,
		UserID:     it.UserID,
		Name:       it.Name,
		TokenHash:  it.TokenHash,
		ExpiresAt:  parseTimePtr(it.ExpiresAt),
		LastUsedAt: parseTimePtr(it.LastUsedAt),
		CreatedAt:  parseTime(it.CreatedAt),
	}
}

type organizationItem struct {
	ID        string  `dynamodbav:"id"`
	Name      string  `dynamodbav:"name"`
	Slug      string  `dynamodbav:"slug"`
	Domain    *string `dynamodbav:"domain,omitempty"`
	Email     *string `dynamodbav:"email,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// OrganizationDynamoRepository persists Organization entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the whole table; it backs internal admin tooling only.

type OrganizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrganizationRepository = (*OrganizationDynamoRepository)(nil)

func NewOrganizationDynamoRepository(ddb *dynamodb.Client) *OrganizationDynamoRepository {
	return &OrganizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORGANIZATIONS_TABLE", defaultOrganizationsTableName),
	}
}

func (r *OrganizationDynamoRepository) Create(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	av, err := attributevalue.MarshalMap(toOrganizationItem(o))
	if err != nil {
		return entities.Organization{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Organization, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Organization{}, err
	}
	if len(out.Item) == 0 {
		return entities.Organization{}, nil
	}

	var it organizationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

func (r *OrganizationDynamoRepository) List(ctx context.Context) ([]entities.Organization, error) {
	var orgs []entities.Organization
	var lastKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it organizationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orgs = append(orgs, fromOrganizationItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return orgs, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func toOrganizationItem(o entities.Organization) organizationItem {
	return organizationItem{
		ID:        o.ID,
		Name:      o.Name,
		Slug:      o.Slug,
		Domain:    o.Domain,
		Email:     o.Email,
		CreatedAt: fmtTime(o.CreatedAt),
		UpdatedAt: fmtTime(o.UpdatedAt),
	}
}

func fromOrganizationItem(it organizationItem) entities.Organization {
	return entities.Organization{
		ID:        it.ID,
		Name:      it.Name,
		Slug:      it.Slug,
		Domain:    it.Domain,
		Email:     it.Email,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
