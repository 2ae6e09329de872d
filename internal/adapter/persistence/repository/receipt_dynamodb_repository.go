package repository

import (
	"context"
	"errors"
	"strconv"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultReceiptsTableName       = "receipts"
	defaultReceiptNumbersTableName = "receipt_numbers"
	receiptsCitizenIDIndex         = "citizen_id-index"
	receiptsNumberYearIndex        = "number_year-index"
)

type receiptItem struct {
	ID         string `dynamodbav:"id"`
	CitizenID  string `dynamodbav:"citizen_id"`
	Number     string `dynamodbav:"number"`
	NumberYear string `dynamodbav:"number_year"`
	Date       string `dynamodbav:"date"`
	Price      string `dynamodbav:"price"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// ReceiptDynamoRepository persists Receipt entities in DynamoDB.
//
// Table requirements:
//   - receipts: PK id, GSI citizen_id-index (PK citizen_id),
//     GSI number_year-index (PK number_year)
//   - receipt_numbers: PK number (uniqueness guard items)
//
// Creation writes the receipt and its guard item in one TransactWriteItems
// call; the guard's attribute_not_exists condition is the storage-level
// unique index on the receipt number. Two concurrent creations computing
// the same number therefore cannot both commit.

type ReceiptDynamoRepository struct {
	ddb              *dynamodb.Client
	tableName        string
	numbersTableName string
}

var _ interfaces.IReceiptRepository = (*ReceiptDynamoRepository)(nil)

func NewReceiptDynamoRepository(ddb *dynamodb.Client) *ReceiptDynamoRepository {
	return &ReceiptDynamoRepository{
		ddb:              ddb,
		tableName:        getenvDefault("RECEIPTS_TABLE", defaultReceiptsTableName),
		numbersTableName: getenvDefault("RECEIPT_NUMBERS_TABLE", defaultReceiptNumbersTableName),
	}
}

func (r *ReceiptDynamoRepository) Create(ctx context.Context, rec entities.Receipt) (entities.Receipt, error) {
	av, err := attributevalue.MarshalMap(toReceiptItem(rec))
	if err != nil {
		return entities.Receipt{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.numbersTableName),
					Item: map[string]types.AttributeValue{
						"number":     &types.AttributeValueMemberS{Value: rec.Number},
						"receipt_id": &types.AttributeValueMemberS{Value: rec.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(#number)"),
					ExpressionAttributeNames: map[string]string{
						"#number": "number",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Receipt{}, interfaces.ErrDuplicateReceiptNumber
				}
			}
		}
		return entities.Receipt{}, err
	}
	return rec, nil
}

func (r *ReceiptDynamoRepository) GetByID(ctx context.Context, id string) (entities.Receipt, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Receipt{}, err
	}
	if len(out.Item) == 0 {
		return entities.Receipt{}, nil
	}

	var it receiptItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Receipt{}, err
	}
	return fromReceiptItem(it), nil
}

func (r *ReceiptDynamoRepository) ListByCitizenID(ctx context.Context, citizenID string) ([]entities.Receipt, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receiptsCitizenIDIndex),
		KeyConditionExpression: aws.String("citizen_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: citizenID},
		},
	})
	if err != nil {
		return nil, err
	}

	receipts := make([]entities.Receipt, 0, len(out.Items))
	for _, raw := range out.Items {
		var it receiptItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		receipts = append(receipts, fromReceiptItem(it))
	}
	return receipts, nil
}

// ListNumbersByYear returns the numbers already allocated within a year,
// projected straight off the year index.
func (r *ReceiptDynamoRepository) ListNumbersByYear(ctx context.Context, year int) ([]string, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receiptsNumberYearIndex),
		KeyConditionExpression: aws.String("number_year = :year"),
		ProjectionExpression:   aws.String("#number"),
		ExpressionAttributeNames: map[string]string{
			"#number": "number",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":year": &types.AttributeValueMemberS{Value: strconv.Itoa(year)},
		},
	})
	if err != nil {
		return nil, err
	}

	numbers := make([]string, 0, len(out.Items))
	for _, raw := range out.Items {
		var it struct {
			Number string `dynamodbav:"number"`
		}
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		numbers = append(numbers, it.Number)
	}
	return numbers, nil
}

func (r *ReceiptDynamoRepository) ListAll(ctx context.Context) ([]entities.Receipt, error) {
	var receipts []entities.Receipt
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it receiptItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			receipts = append(receipts, fromReceiptItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return receipts, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// UpdateStatusFromPending flips the status only while the stored status is
// still pending. A zero-value receipt means the receipt is missing or the
// transition already happened.
func (r *ReceiptDynamoRepository) UpdateStatusFromPending(ctx context.Context, id string, status entities.ReceiptStatus) (entities.Receipt, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pending"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    &types.AttributeValueMemberS{Value: string(entities.ReceiptStatusPending)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Receipt{}, nil
		}
		return entities.Receipt{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Receipt{}, nil
	}

	var it receiptItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Receipt{}, err
	}
	return fromReceiptItem(it), nil
}

func toReceiptItem(rec entities.Receipt) receiptItem {
	return receiptItem{
		ID:         rec.ID,
		CitizenID:  rec.CitizenID,
		Number:     rec.Number,
		NumberYear: strconv.Itoa(rec.Date.Year()),
		Date:       formatDate(rec.Date),
		Price:      floatToString(rec.Price),
		Status:     string(rec.Status),
		CreatedAt:  formatTime(rec.CreatedAt),
		UpdatedAt:  formatTime(rec.UpdatedAt),
	}
}

func fromReceiptItem(it receiptItem) entities.Receipt {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Receipt{
		ID:        it.ID,
		CitizenID: it.CitizenID,
		Number:    it.Number,
		Date:      parseDate(it.Date),
		Price:     price,
		Status:    entities.ReceiptStatus(it.Status),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
