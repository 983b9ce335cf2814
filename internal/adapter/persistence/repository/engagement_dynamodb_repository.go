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
	defaultEngagementsTableName = "engagements"
	engagementsOrgIndex         = "org_id-index"
)

type engagementItem struct {
	ID         string  `dynamodbav:"id"`
	OrgID      string  `dynamodbav:"org_id"`
	ClientID   string  `dynamodbav:"client_id"`
	Name       string  `dynamodbav:"name"`
	Status     int     `dynamodbav:"status"`
	ProposalID *string `dynamodbav:"proposal_id,omitempty"`
	ClosedAt   *string `dynamodbav:"closed_at,omitempty"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// EngagementDynamoRepository persists Engagement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)

type EngagementDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEngagementRepository = (*EngagementDynamoRepository)(nil)

func NewEngagementDynamoRepository(ddb *dynamodb.Client) *EngagementDynamoRepository {
	return &EngagementDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ENGAGEMENTS_TABLE", defaultEngagementsTableName),
	}
}

func (r *EngagementDynamoRepository) Create(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	it := toEngagementItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Engagement{}, err
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
		return entities.Engagement{}, err
	}
	return e, nil
}

func (r *EngagementDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Engagement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Engagement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Engagement{}, nil
	}

	var it engagementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Engagement{}, err
	}
	if it.OrgID != orgID {
		return entities.Engagement{}, nil
	}
	return fromEngagementItem(it), nil
}

func (r *EngagementDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Engagement, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, engagementsOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	engagements := make([]entities.Engagement, 0, len(items))
	for _, raw := range items {
		var it engagementItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		engagements = append(engagements, fromEngagementItem(it))
	}
	return engagements, nil
}

func (r *EngagementDynamoRepository) Update(ctx context.Context, e entities.Engagement) (entities.Engagement, error) {
	e.UpdatedAt = time.Now().UTC()
	it := toEngagementItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Engagement{}, err
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
			":org": &types.AttributeValueMemberS{Value: e.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Engagement{}, nil
		}
		return entities.Engagement{}, err
	}
	return e, nil
}

func toEngagementItem(e entities.Engagement) engagementItem {
	return engagementItem{
		ID:         e.ID,
		OrgID:      e.OrgID,
		ClientID:   e.ClientID,
		Name:       e.Name,
		Status:     int(e.Status),
		ProposalID: e.ProposalID,
		ClosedAt:   fmtTimePtr(e.ClosedAt),
		CreatedAt:  fmtTime(e.CreatedAt),
		UpdatedAt:  fmtTime(e.UpdatedAt),
	}
}

func fromEngagementItem(it engagementItem) entities.Engagement {
	return entities.Engagement{
		ID:         it.ID,
		OrgID:      it.OrgID,
		ClientID:   it.ClientID,
		Name:       it.Name,
		Status:     entities.EngagementStatus(it.Status),
		ProposalID: it.ProposalID,
		ClosedAt:   parseTimePtr(it.ClosedAt),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
