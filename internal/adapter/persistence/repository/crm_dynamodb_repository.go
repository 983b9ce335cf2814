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
	defaultAccountsTableName = "accounts"
	defaultContactsTableName = "contacts"
	crmOrgIndex              = "org_id-index"
)

type accountItem struct {
	ID        string  `dynamodbav:"id"`
	OrgID     string  `dynamodbav:"org_id"`
	Name      string  `dynamodbav:"name"`
	Website   *string `dynamodbav:"website,omitempty"`
	Industry  *string `dynamodbav:"industry,omitempty"`
	Notes     *string `dynamodbav:"notes,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
	DeletedAt *string `dynamodbav:"deleted_at,omitempty"`
}

type contactItem struct {
	ID        string  `dynamodbav:"id"`
	OrgID     string  `dynamodbav:"org_id"`
	AccountID *string `dynamodbav:"account_id,omitempty"`
	Email     string  `dynamodbav:"email"`
	NameF     string  `dynamodbav:"name_f,omitempty"`
	NameL     string  `dynamodbav:"name_l,omitempty"`
	Phone     *string `dynamodbav:"phone,omitempty"`
	Title     *string `dynamodbav:"title,omitempty"`
	CreatedAt string  `dynamodbav:"created_at"`
	UpdatedAt string  `dynamodbav:"updated_at"`
	DeletedAt *string `dynamodbav:"deleted_at,omitempty"`
}

// AccountDynamoRepository persists Account entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)

type AccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAccountRepository = (*AccountDynamoRepository)(nil)

func NewAccountDynamoRepository(ddb *dynamodb.Client) *AccountDynamoRepository {
	return &AccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACCOUNTS_TABLE", defaultAccountsTableName),
	}
}

func (r *AccountDynamoRepository) Create(ctx context.Context, a entities.Account) (entities.Account, error) {
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Account, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Account{}, err
	}
	if len(out.Item) == 0 {
		return entities.Account{}, nil
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Account{}, err
	}
	if it.OrgID != orgID {
		return entities.Account{}, nil
	}
	return fromAccountItem(it), nil
}

func (r *AccountDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Account, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, crmOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	accounts := make([]entities.Account, 0, len(items))
	for _, raw := range items {
		var it accountItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		accounts = append(accounts, fromAccountItem(it))
	}
	return accounts, nil
}

func (r *AccountDynamoRepository) Update(ctx context.Context, a entities.Account) (entities.Account, error) {
	a.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toAccountItem(a))
	if err != nil {
		return entities.Account{}, err
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
			":org": &types.AttributeValueMemberS{Value: a.OrgID},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Account{}, nil
		}
		return entities.Account{}, err
	}
	return a, nil
}

func (r *AccountDynamoRepository) SoftDelete(ctx context.Context, orgID, id string) (entities.Account, error) {
	out, err := softDeleteItem(ctx, r.ddb, r.tableName, orgID, id)
	if err != nil || out == nil {
		return entities.Account{}, err
	}

	var it accountItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Account{}, err
	}
	return fromAccountItem(it), nil
}

// ContactDynamoRepository persists Contact entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	av, err := attributevalue.MarshalMap(toContactItem(c))
	if err != nil {
		return entities.Contact{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     av,
		ConditionExpression:      aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Contact, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contact{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contact{}, nil
	}

	var it contactItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contact{}, err
	}
	if it.OrgID != orgID {
		return entities.Contact{}, nil
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Contact, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, crmOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	contacts := make([]entities.Contact, 0, len(items))
	for _, raw := range items {
		var it contactItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		contacts = append(contacts, fromContactItem(it))
	}
	return contacts, nil
}

func (r *ContactDynamoRepository) Update(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.UpdatedAt = time.Now().UTC()
	av, err := attributevalue.MarshalMap(toContactItem(c))
	if err != nil {
		return entities.Contact{}, err
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
			return entities.Contact{}, nil
		}
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) SoftDelete(ctx context.Context, orgID, id string) (entities.Contact, error) {
	out, err := softDeleteItem(ctx, r.ddb, r.tableName, orgID, id)
	if err != nil || out == nil {
		return entities.Contact{}, err
	}

	var it contactItem
	if err := attributevalue.UnmarshalMap(out, &it); err != nil {
		return entities.Contact{}, err
	}
	return fromContactItem(it), nil
}

// softDeleteItem stamps deleted_at under the usual org guard and returns the
// new attributes, or nil when the item is missing or belongs to another org.
func softDeleteItem(ctx context.Context, ddb *dynamodb.Client, table, orgID, id string) (map[string]types.AttributeValue, error) {
	now := fmtTime(time.Now().UTC())

	out, err := ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(table),
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
			return nil, nil
		}
		return nil, err
	}
	return out.Attributes, nil
}

func toAccountItem(a entities.Account) accountItem {
	return accountItem{
		ID:        a.ID,
		OrgID:     a.OrgID,
		Name:      a.Name,
		Website:   a.Website,
		Industry:  a.Industry,
		Notes:     a.Notes,
		CreatedAt: fmtTime(a.CreatedAt),
		UpdatedAt: fmtTime(a.UpdatedAt),
		DeletedAt: fmtTimePtr(a.DeletedAt),
	}
}

func fromAccountItem(it accountItem) entities.Account {
	return entities.Account{
		ID:        it.ID,
		OrgID:     it.OrgID,
		Name:      it.Name,
		Website:   it.Website,
		Industry:  it.Industry,
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		ID:        c.ID,
		OrgID:     c.OrgID,
		AccountID: c.AccountID,
		Email:     c.Email,
		NameF:     c.NameF,
		NameL:     c.NameL,
		Phone:     c.Phone,
		Title:     c.Title,
		CreatedAt: fmtTime(c.CreatedAt),
		UpdatedAt: fmtTime(c.UpdatedAt),
		DeletedAt: fmtTimePtr(c.DeletedAt),
	}
}

func fromContactItem(it contactItem) entities.Contact {
	return entities.Contact{
		ID:        it.ID,
		OrgID:     it.OrgID,
		AccountID: it.AccountID,
		Email:     it.Email,
		NameF:     it.NameF,
		NameL:     it.NameL,
		Phone:     it.Phone,
		Title:     it.Title,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
		DeletedAt: parseTimePtr(it.DeletedAt),
	}
}
