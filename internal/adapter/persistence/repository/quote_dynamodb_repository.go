package repository

import (
	"context"
	"strconv"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/domain/pricing"
	"pestpro_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	quotesLeadIDIndex      = "lead_id-index"
)

type quoteItem struct {
	ID            string   `dynamodbav:"id"`
	LeadID        string   `dynamodbav:"lead_id"`
	ZIP           string   `dynamodbav:"zip,omitempty"`
	Acreage       string   `dynamodbav:"acreage"`
	Program       string   `dynamodbav:"program"`
	FrequencyDays int      `dynamodbav:"frequency_days"`
	PerVisit      *string  `dynamodbav:"per_visit,omitempty"`
	PerMonth      *string  `dynamodbav:"per_month,omitempty"`
	AnnualTotal   *string  `dynamodbav:"annual_total,omitempty"`
	VisitsPerYear *string  `dynamodbav:"visits_per_year,omitempty"`
	TierLabel     string   `dynamodbav:"tier_label,omitempty"`
	IsCustom      bool     `dynamodbav:"is_custom"`
	Message       string   `dynamodbav:"message,omitempty"`
	CreatedAt     string   `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: lead_id-index (PK: lead_id)
//
// Prices are stored as strings to keep the exact two-decimal figures the lead
// was shown, free of float re-encoding surprises.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) ListByLeadID(ctx context.Context, leadID string) ([]entities.Quote, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotesLeadIDIndex),
		KeyConditionExpression: aws.String("lead_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: leadID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuoteItem(it))
	}
	return items, nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:            q.ID,
		LeadID:        q.LeadID,
		ZIP:           q.ZIP,
		Acreage:       floatToString(q.Acreage),
		Program:       string(q.Program),
		FrequencyDays: q.FrequencyDays,
		PerVisit:      floatPtrToString(q.Result.PerVisit),
		PerMonth:      floatPtrToString(q.Result.PerMonth),
		AnnualTotal:   floatPtrToString(q.Result.AnnualTotal),
		VisitsPerYear: floatPtrToString(q.Result.VisitsPerYear),
		TierLabel:     q.Result.TierLabel,
		IsCustom:      q.Result.IsCustom,
		Message:       q.Result.Message,
		CreatedAt:     q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	acreage, _ := strconv.ParseFloat(it.Acreage, 64)
	return entities.Quote{
		ID:            it.ID,
		LeadID:        it.LeadID,
		ZIP:           it.ZIP,
		Acreage:       acreage,
		Program:       pricing.Program(it.Program),
		FrequencyDays: it.FrequencyDays,
		Result: pricing.Result{
			PerVisit:      stringPtrToFloat(it.PerVisit),
			PerMonth:      stringPtrToFloat(it.PerMonth),
			AnnualTotal:   stringPtrToFloat(it.AnnualTotal),
			VisitsPerYear: stringPtrToFloat(it.VisitsPerYear),
			TierLabel:     it.TierLabel,
			IsCustom:      it.IsCustom,
			Message:       it.Message,
		},
		CreatedAt: createdAt,
	}
}

func floatPtrToString(v *float64) *string {
	if v == nil {
		return nil
	}
	s := floatToString(*v)
	return &s
}

func stringPtrToFloat(s *string) *float64 {
	if s == nil {
		return nil
	}
	v, err := strconv.ParseFloat(*s, 64)
	if err != nil {
		return nil
	}
	return &v
}
