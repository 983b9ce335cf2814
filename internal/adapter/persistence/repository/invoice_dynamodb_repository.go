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
	defaultInvoicesTableName = "invoices"
	invoicesOrgIndex         = "org_id-index"
)

type invoiceItemItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description *string `dynamodbav:"description,omitempty"`
	Quantity    int     `dynamodbav:"quantity"`
	Amount      string  `dynamodbav:"amount"`
	Discount    string  `dynamodbav:"discount"`
	Total       string  `dynamodbav:"total"`
	ServiceID   *string `dynamodbav:"service_id,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

type invoiceItem struct {
	ID        string            `dynamodbav:"id"`
	OrgID     string            `dynamodbav:"org_id"`
	Number    string            `dynamodbav:"number"`
	UserID    string            `dynamodbav:"user_id"`
	Status    int               `dynamodbav:"status"`
	Items     []invoiceItemItem `dynamodbav:"items"`
	Tax       *string           `dynamodbav:"tax,omitempty"`
	TaxType   *int              `dynamodbav:"tax_type,omitempty"`
	Total     string            `dynamodbav:"total"`
	Note      *string           `dynamodbav:"note,omitempty"`
	DateDue   *string           `dynamodbav:"date_due,omitempty"`
	DatePaid  *string           `dynamodbav:"date_paid,omitempty"`
	CreatedAt string            `dynamodbav:"created_at"`
	UpdatedAt string            `dynamodbav:"updated_at"`
	DeletedAt *string           `dynamodbav:"deleted_at,omitempty"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB. Line items
// are embedded on the invoice record.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	if it.OrgID != orgID {
		return entities.Invoice{}, nil
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Invoice, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, invoicesOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(items))
	for _, raw := range items {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) Update(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	inv.UpdatedAt = time.Now().UTC()
	it := toInvoiceItem(inv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Invoice{}, err
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
			":org": &types.AttributeValueMemberS{Value: inv.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) SoftDelete(ctx context.Context, orgID, id string) (entities.Invoice, error) {
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
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	items := make([]invoiceItemItem, 0, len(inv.Items))
	for _, li := range inv.Items {
		items = append(items, invoiceItemItem{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			Amount:      floatToString(li.Amount),
			Discount:    floatToString(li.Discount),
			Total:       floatToString(li.Total),
			ServiceID:   li.ServiceID,
			CreatedAt:   fmtTime(li.CreatedAt),
		})
	}
	return invoiceItem{
		ID:        inv.ID,
		OrgID:     inv.OrgID,
		Number:    inv.Number,
		UserID:    inv.UserID,
		Status:    int(inv.Status),
		Items:     items,
		Tax:       floatPtrToString(inv.Tax),
		TaxType:   inv.TaxType,
		Total:     floatToString(inv.Total),
		Note:      inv.Note,
		DateDue:   fmtTimePtr(inv.DateDue),
		DatePaid:  fmtTimePtr(inv.DatePaid),
		CreatedAt: fmtTime(inv.CreatedAt),
		UpdatedAt: fmtTime(inv.UpdatedAt),
		DeletedAt: fmtTimePtr(inv.DeletedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	items := make([]entities.InvoiceItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.InvoiceItem{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Quantity:    li.Quantity,
			Amount:      parseFloat(li.Amount),
			Discount:    parseFloat(li.Discount),
			Total:       parseFloat(li.Total),
			ServiceID:   li.ServiceID,
			CreatedAt:   parseTime(li.CreatedAt),
		})
	}
	return entities.Invoice{
		ID:        it.ID,
		OrgID:     it.OrgID,
		Number:    it.Number,
		UserID:    it.UserID,
		Status:    entities.InvoiceStatus(it.Status),
		Items:     items,
		Tax:       parseFloatPtr(it.Tax),
		TaxType:   it.TaxType,
		Total:     parseFloat(it.Total),
		Note:      it.Note,
		DateDue:   parseTimePtr(it.DateDue),
		DatePaid:  parseTimePtr(it.DatePaid),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
}
