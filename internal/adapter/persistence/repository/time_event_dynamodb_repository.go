package repository

import (
	"context"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultTimeEventsTableName = "time_events"

type timeEventItem struct {
	ShiftID    string                 `dynamodbav:"shift_id"`
	Timestamp  string                 `dynamodbav:"timestamp"`
	ID         string                 `dynamodbav:"id"`
	EmployeeID string                 `dynamodbav:"employee_id"`
	EventType  string                 `dynamodbav:"event_type"`
	Lat        *float64               `dynamodbav:"lat,omitempty"`
	Lng        *float64               `dynamodbav:"lng,omitempty"`
	Meta       map[string]interface{} `dynamodbav:"meta,omitempty"`
}

// TimeEventDynamoRepository persists TimeEvent entities in DynamoDB.
//
// Table requirements:
//   - PK: shift_id (string)
//   - SK: timestamp (string, RFC3339Nano)
//
// RFC3339Nano timestamps in UTC sort lexicographically in chronological
// order, so ListByShiftID reads back the day's log already sorted.

type TimeEventDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeEventRepository = (*TimeEventDynamoRepository)(nil)

func NewTimeEventDynamoRepository(ddb *dynamodb.Client) *TimeEventDynamoRepository {
	return &TimeEventDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_EVENTS_TABLE", defaultTimeEventsTableName),
	}
}

func (r *TimeEventDynamoRepository) Create(ctx context.Context, e entities.TimeEvent) (entities.TimeEvent, error) {
	it := toTimeEventItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.TimeEvent{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.TimeEvent{}, err
	}
	return e, nil
}

func (r *TimeEventDynamoRepository) ListByShiftID(ctx context.Context, shiftID string) ([]entities.TimeEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("shift_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: shiftID},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.TimeEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it timeEventItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTimeEventItem(it))
	}
	return items, nil
}

func toTimeEventItem(e entities.TimeEvent) timeEventItem {
	return timeEventItem{
		ShiftID:    e.ShiftID,
		Timestamp:  e.Timestamp.UTC().Format(time.RFC3339Nano),
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		EventType:  string(e.Type),
		Lat:        e.Lat,
		Lng:        e.Lng,
		Meta:       e.Meta,
	}
}

func fromTimeEventItem(it timeEventItem) entities.TimeEvent {
	ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
	return entities.TimeEvent{
		ID:         it.ID,
		ShiftID:    it.ShiftID,
		EmployeeID: it.EmployeeID,
		Type:       entities.EventType(it.EventType),
		Timestamp:  ts,
		Lat:        it.Lat,
		Lng:        it.Lng,
		Meta:       it.Meta,
	}
}
