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
	defaultTicketsTableName = "tickets"
	ticketsOrgIndex         = "org_id-index"
)

type ticketItem struct {
	ID        string  `dynamodbav:"id"`
	OrgID     string  `dynamodbav:"org_id"`
	UserID    string  `dynamodbav:"user_id"`
	Subject   string  `dynamodbav:"subject"`
	Body      *string `dynamodbav:"body,omitempty"`
	Status    int     `dynamodbav:"status"`
	ClosedAt  *string `dynamodbav:"closed_at,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
}

// TicketDynamoRepository persists Ticket entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)

type TicketDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITicketRepository = (*TicketDynamoRepository)(nil)

func NewTicketDynamoRepository(ddb *dynamodb.Client) *TicketDynamoRepository {
	return &TicketDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TICKETS_TABLE", defaultTicketsTableName),
	}
}

func (r *TicketDynamoRepository) Create(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	it := toTicketItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Ticket{}, err
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
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Ticket, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Ticket{}, err
	}
	if len(out.Item) == 0 {
		return entities.Ticket{}, nil
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Ticket{}, err
	}
	if it.OrgID != orgID {
		return entities.Ticket{}, nil
	}
	return fromTicketItem(it), nil
}

func (r *TicketDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Ticket, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, ticketsOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	tickets := make([]entities.Ticket, 0, len(items))
	for _, raw := range items {
		var it ticketItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		tickets = append(tickets, fromTicketItem(it))
	}
	return tickets, nil
}

func (r *TicketDynamoRepository) Update(ctx context.Context, t entities.Ticket) (entities.Ticket, error) {
	t.UpdatedAt = time.Now().UTC()
	it := toTicketItem(t)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Ticket{}, err
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
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}
	return t, nil
}

func (r *TicketDynamoRepository) Delete(ctx context.Context, orgID, id string) (entities.Ticket, error) {
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
			return entities.Ticket{}, nil
		}
		return entities.Ticket{}, err
	}

	var it ticketItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Ticket{}, err
	}
	return fromTicketItem(it), nil
}

func toTicketItem(t entities.Ticket) ticketItem {
	return ticketItem{
		ID:        t.ID,
		OrgID:     t.OrgID,
		UserID:    t.UserID,
		Subject:   t.Subject,
		Body:      t.Body,
		Status:    int(t.Status),
		ClosedAt:  fmtTimePtr(t.ClosedAt),
		CreatedAt: fmtTime(t.CreatedAt),
		UpdatedAt: fmtTime(t.UpdatedAt),
	}
}

func fromTicketItem(it ticketItem) entities.Ticket {
	return entities.Ticket{
		ID:        it.ID,
		OrgID:     it.OrgID,
		UserID:    it.UserID,
		Subject:   it.Subject,
		Body:      it.Body,
		Status:    entities.TicketStatus(it.Status),
		ClosedAt:  parseTimePtr(it.ClosedAt),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
