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
	defaultProjectsTableName = "projects"
	projectsOrgIndex         = "org_id-index"
)

type projectItem struct {
	ID           string  `dynamodbav:"id"`
	OrgID        string  `dynamodbav:"org_id"`
	EngagementID string  `dynamodbav:"engagement_id"`
	Name         string  `dynamodbav:"name"`
	Description  *string `dynamodbav:"description,omitempty"`
	Status       int     `dynamodbav:"status"`
	Phase        int     `dynamodbav:"phase"`
	ServiceID    *string `dynamodbav:"service_id,omitempty"`
	CompletedAt  *string `dynamodbav:"completed_at,omitempty"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// ProjectDynamoRepository persists Project entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)
//
// ListByEngagement filters the org partition in memory; engagements hold a
// handful of projects at most.

type ProjectDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProjectRepository = (*ProjectDynamoRepository)(nil)

func NewProjectDynamoRepository(ddb *dynamodb.Client) *ProjectDynamoRepository {
	return &ProjectDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECTS_TABLE", defaultProjectsTableName),
	}
}

func (r *ProjectDynamoRepository) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
		return entities.Project{}, err
	}
	return p, nil
}

func (r *ProjectDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Project, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Project{}, err
	}
	if len(out.Item) == 0 {
		return entities.Project{}, nil
	}

	var it projectItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Project{}, err
	}
	if it.OrgID != orgID {
		return entities.Project{}, nil
	}
	return fromProjectItem(it), nil
}

func (r *ProjectDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Project, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, projectsOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	projects := make([]entities.Project, 0, len(items))
	for _, raw := range items {
		var it projectItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		projects = append(projects, fromProjectItem(it))
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) ListByEngagement(ctx context.Context, orgID, engagementID string) ([]entities.Project, error) {
	all, err := r.ListByOrg(ctx, orgID)
	if err != nil {
		return nil, err
	}
	projects := make([]entities.Project, 0, len(all))
	for _, p := range all {
		if p.EngagementID == engagementID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *ProjectDynamoRepository) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.UpdatedAt = time.Now().UTC()
	it := toProjectItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Project{}, err
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
			":org": &types.AttributeValueMemberS{Value: p.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Project{}, nil
		}
		return entities.Project{}, err
	}
	return p, nil
}

func toProjectItem(p entities.Project) projectItem {
	return projectItem{
		ID:           p.ID,
		OrgID:        p.OrgID,
		EngagementID: p.EngagementID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       int(p.Status),
		Phase:        int(p.Phase),
		ServiceID:    p.ServiceID,
		CompletedAt:  fmtTimePtr(p.CompletedAt),
		CreatedAt:    fmtTime(p.CreatedAt),
		UpdatedAt:    fmtTime(p.UpdatedAt),
	}
}

func fromProjectItem(it projectItem) entities.Project {
	return entities.Project{
		ID:           it.ID,
		OrgID:        it.OrgID,
		EngagementID: it.EngagementID,
		Name:         it.Name,
		Description:  it.Description,
		Status:       entities.ProjectStatus(it.Status),
		Phase:        entities.ProjectPhase(it.Phase),
		ServiceID:    it.ServiceID,
		CompletedAt:  parseTimePtr(it.CompletedAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
