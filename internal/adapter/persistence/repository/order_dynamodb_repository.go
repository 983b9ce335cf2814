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
	defaultOrdersTableName = "orders"
	ordersOrgIndex         = "org_id-index"
	ordersNumberIndex      = "number-index"
)

type orderMetadataItemItem struct {
	Name        string  `dynamodbav:"name"`
	Description *string `dynamodbav:"description,omitempty"`
	Price       string  `dynamodbav:"price"`
	ServiceID   *string `dynamodbav:"service_id,omitempty"`
}

type orderMetadataItem struct {
	ProposalID    string                  `dynamodbav:"proposal_id,omitempty"`
	EngagementID  string                  `dynamodbav:"engagement_id,omitempty"`
	SignedVia     string                  `dynamodbav:"signed_via,omitempty"`
	ProposalItems []orderMetadataItemItem `dynamodbav:"proposal_items,omitempty"`
}

type orderItem struct {
	ID           string            `dynamodbav:"id"`
	OrgID        string            `dynamodbav:"org_id"`
	Number       string            `dynamodbav:"number"`
	UserID       string            `dynamodbav:"user_id"`
	ServiceID    *string           `dynamodbav:"service_id,omitempty"`
	ServiceName  string            `dynamodbav:"service_name,omitempty"`
	Price        string            `dynamodbav:"price"`
	Currency     string            `dynamodbav:"currency"`
	Quantity     int               `dynamodbav:"quantity"`
	Status       int               `dynamodbav:"status"`
	EngagementID *string           `dynamodbav:"engagement_id,omitempty"`
	Note         string            `dynamodbav:"note,omitempty"`
	Metadata     orderMetadataItem `dynamodbav:"metadata"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)
//   - GSI: number-index (PK: number)
//
// Create returns the zero value when the human-facing order number is already
// taken, so the caller can regenerate and retry.

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
	taken, err := queryAllByIndex(ctx, r.ddb, r.tableName, ordersNumberIndex, "number", o.Number)
	if err != nil {
		return entities.Order{}, err
	}
	if len(taken) > 0 {
		return entities.Order{}, nil
	}

	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
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

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Order, error) {
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
	if it.OrgID != orgID {
		return entities.Order{}, nil
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Order, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, ordersOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(items))
	for _, raw := range items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order) (entities.Order, error) {
	o.UpdatedAt = time.Now().UTC()
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
			":org": &types.AttributeValueMemberS{Value: o.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, orgID, id string) (entities.Order, error) {
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
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func toOrderItem(o entities.Order) orderItem {
	metaItems := make([]orderMetadataItemItem, 0, len(o.Metadata.ProposalItems))
	for _, mi := range o.Metadata.ProposalItems {
		metaItems = append(metaItems, orderMetadataItemItem{
			Name:        mi.Name,
			Description: mi.Description,
			Price:       mi.Price,
			ServiceID:   mi.ServiceID,
		})
	}
	return orderItem{
		ID:           o.ID,
		OrgID:        o.OrgID,
		Number:       o.Number,
		UserID:       o.UserID,
		ServiceID:    o.ServiceID,
		ServiceName:  o.ServiceName,
		Price:        floatToString(o.Price),
		Currency:     o.Currency,
		Quantity:     o.Quantity,
		Status:       int(o.Status),
		EngagementID: o.EngagementID,
		Note:         o.Note,
		Metadata: orderMetadataItem{
			ProposalID:    o.Metadata.ProposalID,
			EngagementID:  o.Metadata.EngagementID,
			SignedVia:     o.Metadata.SignedVia,
			ProposalItems: metaItems,
		},
		CreatedAt: fmtTime(o.CreatedAt),
		UpdatedAt: fmtTime(o.UpdatedAt),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	metaItems := make([]entities.OrderMetadataItem, 0, len(it.Metadata.ProposalItems))
	for _, mi := range it.Metadata.ProposalItems {
		metaItems = append(metaItems, entities.OrderMetadataItem{
			Name:        mi.Name,
			Description: mi.Description,
			Price:       mi.Price,
			ServiceID:   mi.ServiceID,
		})
	}
	return entities.Order{
		ID:           it.ID,
		OrgID:        it.OrgID,
		Number:       it.Number,
		UserID:       it.UserID,
		ServiceID:    it.ServiceID,
		ServiceName:  it.ServiceName,
		Price:        parseFloat(it.Price),
		Currency:     it.Currency,
		Quantity:     it.Quantity,
		Status:       entities.OrderStatus(it.Status),
		EngagementID: it.EngagementID,
		Note:         it.Note,
		Metadata: entities.OrderMetadata{
			ProposalID:    it.Metadata.ProposalID,
			EngagementID:  it.Metadata.EngagementID,
			SignedVia:     it.Metadata.SignedVia,
			ProposalItems: metaItems,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
