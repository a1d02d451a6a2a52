package repository

import (
	"context"
	"errors"
	"time"

	"pestpro_ops/internal/domain/entities"
	"pestpro_ops/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultShiftsTableName = "shifts"

type shiftItem struct {
	ID           string `dynamodbav:"id"`
	EmployeeID   string `dynamodbav:"employee_id"`
	ShiftDate    string `dynamodbav:"shift_date"`
	ClockInAt    string `dynamodbav:"clock_in_at,omitempty"`
	ClockOutAt   string `dynamodbav:"clock_out_at,omitempty"`
	BreakMinutes int    `dynamodbav:"break_minutes"`
}

// ShiftDynamoRepository persists Shift entities in DynamoDB.
//
// Table requirements:
//   - PK: employee_id (string)
//   - SK: shift_date (string, YYYY-MM-DD)
//
// The composite key enforces one shift per employee per calendar day via a
// conditional put, and shift_date's lexicographic order makes the timesheet
// range lookup a plain key BETWEEN query.

type ShiftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShiftRepository = (*ShiftDynamoRepository)(nil)

func NewShiftDynamoRepository(ddb *dynamodb.Client) *ShiftDynamoRepository {
	return &ShiftDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIFTS_TABLE", defaultShiftsTableName),
	}
}

func (r *ShiftDynamoRepository) Create(ctx context.Context, s entities.Shift) (entities.Shift, error) {
	it := toShiftItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Shift{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#employee_id) AND attribute_not_exists(#shift_date)"),
		ExpressionAttributeNames: map[string]string{
			"#employee_id": "employee_id",
			"#shift_date":  "shift_date",
		},
	})
	if err != nil {
		return entities.Shift{}, err
	}
	return s, nil
}

func (r *ShiftDynamoRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, shiftDate string) (entities.Shift, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
			"shift_date":  &types.AttributeValueMemberS{Value: shiftDate},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shift{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shift{}, nil
	}

	var it shiftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shift{}, err
	}
	return fromShiftItem(it), nil
}

func (r *ShiftDynamoRepository) SetClockOut(ctx context.Context, employeeID, shiftDate string, at time.Time, breakMinutes int) (entities.Shift, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"employee_id": &types.AttributeValueMemberS{Value: employeeID},
			"shift_date":  &types.AttributeValueMemberS{Value: shiftDate},
		},
		ConditionExpression: aws.String("attribute_exists(#employee_id)"),
		UpdateExpression:    aws.String("SET #clock_out_at = :clock_out_at, #break_minutes = :break_minutes"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":clock_out_at":  &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":break_minutes": &types.AttributeValueMemberN{Value: intToString(breakMinutes)},
		},
		ExpressionAttributeNames: map[string]string{
			"#employee_id":   "employee_id",
			"#clock_out_at":  "clock_out_at",
			"#break_minutes": "break_minutes",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Shift{}, nil
		}
		return entities.Shift{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Shift{}, nil
	}
	var it shiftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shift{}, err
	}
	return fromShiftItem(it), nil
}

func (r *ShiftDynamoRepository) ListByEmployeeAndRange(ctx context.Context, employeeID, fromDate, toDate string) ([]entities.Shift, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("employee_id = :eid AND shift_date BETWEEN :from AND :to"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":eid":  &types.AttributeValueMemberS{Value: employeeID},
			":from": &types.AttributeValueMemberS{Value: fromDate},
			":to":   &types.AttributeValueMemberS{Value: toDate},
		},
		ScanIndexForward: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Shift, 0, len(out.Items))
	for _, raw := range out.Items {
		var it shiftItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromShiftItem(it))
	}
	return items, nil
}

func toShiftItem(s entities.Shift) shiftItem {
	it := shiftItem{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		ShiftDate:    s.ShiftDate,
		BreakMinutes: s.BreakMinutes,
	}
	if s.ClockInAt != nil {
		it.ClockInAt = s.ClockInAt.UTC().Format(time.RFC3339Nano)
	}
	if s.ClockOutAt != nil {
		it.ClockOutAt = s.ClockOutAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromShiftItem(it shiftItem) entities.Shift {
	s := entities.Shift{
		ID:           it.ID,
		EmployeeID:   it.EmployeeID,
		ShiftDate:    it.ShiftDate,
		BreakMinutes: it.BreakMinutes,
	}
	if it.ClockInAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ClockInAt); err == nil {
			s.ClockInAt = &t
		}
	}
	if it.ClockOutAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ClockOutAt); err == nil {
			s.ClockOutAt = &t
		}
	}
	return s
}
