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
	defaultProposalsTableName = "proposals"
	proposalsOrgIndex         = "org_id-index"
	proposalsDocumentIndex    = "documenso_document_id-index"
)

type proposalItemItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description,omitempty"`
	Price       string  `dynamodbav:"price"`
	ServiceID   *string `dynamodbav:"service_id,omitempty"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

type proposalSignatureItem struct {
	SignerName      string `dynamodbav:"signer_name,omitempty"`
	SignerEmail     string `dynamodbav:"signer_email,omitempty"`
	SignerIP        string `dynamodbav:"signer_ip,omitempty"`
	SignerUserAgent string `dynamodbav:"signer_user_agent,omitempty"`
	SignatureRef    string `dynamodbav:"signature_ref,omitempty"`
}

type proposalItem struct {
	ID                    string                `dynamodbav:"id"`
	OrgID                 string                `dynamodbav:"org_id"`
	ContactEmail          string                `dynamodbav:"contact_email"`
	ContactNameF          string                `dynamodbav:"contact_name_f,omitempty"`
	ContactNameL          string                `dynamodbav:"contact_name_l,omitempty"`
	ContactCompany        *string               `dynamodbav:"contact_company,omitempty"`
	Status                int                   `dynamodbav:"status"`
	Total                 string                `dynamodbav:"total"`
	Notes                 *string               `dynamodbav:"notes,omitempty"`
	Items                 []proposalItemItem    `dynamodbav:"items"`
	PDFURL                *string               `dynamodbav:"pdf_url,omitempty"`
	DocumensoDocumentID   string                `dynamodbav:"documenso_document_id,omitempty"`
	DocumensoSigningToken string                `dynamodbav:"documenso_signing_token,omitempty"`
	Signature             proposalSignatureItem `dynamodbav:"signature"`
	ConvertedOrderID      *string               `dynamodbav:"converted_order_id,omitempty"`
	ConvertedEngagementID *string               `dynamodbav:"converted_engagement_id,omitempty"`
	SentAt                *string               `dynamodbav:"sent_at,omitempty"`
	SignedAt              *string               `dynamodbav:"signed_at,omitempty"`
	CreatedAt             string                `dynamodbav:"created_at"`
	UpdatedAt             string                `dynamodbav:"updated_at"`
	DeletedAt             *string               `dynamodbav:"deleted_at,omitempty"`
}

// ProposalDynamoRepository persists Proposal entities in DynamoDB. Line items
// live embedded on the proposal record so a proposal is always written and
// read as one unit.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: org_id-index (PK: org_id)
//   - GSI: documenso_document_id-index (PK: documenso_document_id)

type ProposalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
	}
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
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
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, orgID, id string) (entities.Proposal, error) {
	p, err := r.GetByIDPublic(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.OrgID != orgID {
		return entities.Proposal{}, nil
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByIDPublic(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) GetByDocumentID(ctx context.Context, documentID string) (entities.Proposal, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, proposalsDocumentIndex, "documenso_document_id", documentID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(items) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(items[0], &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByOrg(ctx context.Context, orgID string) ([]entities.Proposal, error) {
	items, err := queryAllByIndex(ctx, r.ddb, r.tableName, proposalsOrgIndex, "org_id", orgID)
	if err != nil {
		return nil, err
	}

	proposals := make([]entities.Proposal, 0, len(items))
	for _, raw := range items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		proposals = append(proposals, fromProposalItem(it))
	}
	return proposals, nil
}

// TransitionAndUpdate writes the full proposal state, but only if the stored
// status still equals from. The losing side of a concurrent send/sign gets
// the zero value back.
func (r *ProposalDynamoRepository) TransitionAndUpdate(ctx context.Context, p entities.Proposal, from entities.ProposalStatus) (entities.Proposal, error) {
	p.UpdatedAt = time.Now().UTC()
	it := toProposalItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :from"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberN{Value: intToString(int(from))},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) SoftDelete(ctx context.Context, orgID, id string) (entities.Proposal, error) {
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
			return entities.Proposal{}, nil
		}
		return entities.Proposal{}, err
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	items := make([]proposalItemItem, 0, len(p.Items))
	for _, li := range p.Items {
		items = append(items, proposalItemItem{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Price:       floatToString(li.Price),
			ServiceID:   li.ServiceID,
			CreatedAt:   fmtTime(li.CreatedAt),
		})
	}
	return proposalItem{
		ID:                    p.ID,
		OrgID:                 p.OrgID,
		ContactEmail:          p.ContactEmail,
		ContactNameF:          p.ContactNameF,
		ContactNameL:          p.ContactNameL,
		ContactCompany:        p.ContactCompany,
		Status:                int(p.Status),
		Total:                 floatToString(p.Total),
		Notes:                 p.Notes,
		Items:                 items,
		PDFURL:                p.PDFURL,
		DocumensoDocumentID:   p.DocumensoDocumentID,
		DocumensoSigningToken: p.DocumensoSigningToken,
		Signature: proposalSignatureItem{
			SignerName:      p.Signature.SignerName,
			SignerEmail:     p.Signature.SignerEmail,
			SignerIP:        p.Signature.SignerIP,
			SignerUserAgent: p.Signature.SignerUserAgent,
			SignatureRef:    p.Signature.SignatureRef,
		},
		ConvertedOrderID:      p.ConvertedOrderID,
		ConvertedEngagementID: p.ConvertedEngagementID,
		SentAt:                fmtTimePtr(p.SentAt),
		SignedAt:              fmtTimePtr(p.SignedAt),
		CreatedAt:             fmtTime(p.CreatedAt),
		UpdatedAt:             fmtTime(p.UpdatedAt),
		DeletedAt:             fmtTimePtr(p.DeletedAt),
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	items := make([]entities.ProposalItem, 0, len(it.Items))
	for _, li := range it.Items {
		items = append(items, entities.ProposalItem{
			ID:          li.ID,
			Name:        li.Name,
			Description: li.Description,
			Price:       parseFloat(li.Price),
			ServiceID:   li.ServiceID,
			CreatedAt:   parseTime(li.CreatedAt),
		})
	}
	return entities.Proposal{
		ID:                    it.ID,
		OrgID:                 it.OrgID,
		ContactEmail:          it.ContactEmail,
		ContactNameF:          it.ContactNameF,
		ContactNameL:          it.ContactNameL,
		ContactCompany:        it.ContactCompany,
		Status:                entities.ProposalStatus(it.Status),
		Total:                 parseFloat(it.Total),
		Notes:                 it.Notes,
		Items:                 items,
		PDFURL:                it.PDFURL,
		DocumensoDocumentID:   it.DocumensoDocumentID,
		DocumensoSigningToken: it.DocumensoSigningToken,
		Signature: entities.SignatureEvidence{
			SignerName:      it.Signature.SignerName,
			SignerEmail:     it.Signature.SignerEmail,
			SignerIP:        it.Signature.SignerIP,
			SignerUserAgent: it.Signature.SignerUserAgent,
			SignatureRef:    it.Signature.SignatureRef,
		},
		ConvertedOrderID:      it.ConvertedOrderID,
		ConvertedEngagementID: it.ConvertedEngagementID,
		SentAt:                parseTimePtr(it.SentAt),
		SignedAt:              parseTimePtr(it.SignedAt),
		CreatedAt:             parseTime(it.CreatedAt),
		UpdatedAt:             parseTime(it.UpdatedAt),
		DeletedAt:             parseTimePtr(it.DeletedAt),
	}
}
