package repository

import (
	"context"
	"errors"
	"strings"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCitizensTableName = "citizens"
	citizensCINIndex         = "cin-index"
)

type citizenItem struct {
	ID        string `dynamodbav:"id"`
	FullName  string `dynamodbav:"full_name"`
	CIN       string `dynamodbav:"cin"`
	CINLower  string `dynamodbav:"cin_lower"`
	Address   string `dynamodbav:"address"`
	Frozen    bool   `dynamodbav:"frozen"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CitizenDynamoRepository persists Citizen entities in DynamoDB.
//
// Table requirements:
//   - PK: id
//   - GSI: cin-index (PK: cin_lower)
//
// cin_lower backs the case-insensitive CIN lookup. Update deliberately
// never touches the frozen attribute; SetFrozen is the only write path for
// it, keeping the derived flag under the derivation routine's control.

type CitizenDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICitizenRepository = (*CitizenDynamoRepository)(nil)

func NewCitizenDynamoRepository(ddb *dynamodb.Client) *CitizenDynamoRepository {
	return &CitizenDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CITIZENS_TABLE", defaultCitizensTableName),
	}
}

func (r *CitizenDynamoRepository) Create(ctx context.Context, c entities.Citizen) (entities.Citizen, error) {
	av, err := attributevalue.MarshalMap(toCitizenItem(c))
	if err != nil {
		return entities.Citizen{}, err
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
		return entities.Citizen{}, err
	}
	return c, nil
}

func (r *CitizenDynamoRepository) GetByID(ctx context.Context, id string) (entities.Citizen, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Citizen{}, err
	}
	if len(out.Item) == 0 {
		return entities.Citizen{}, nil
	}

	var it citizenItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Citizen{}, err
	}
	return fromCitizenItem(it), nil
}

// GetByCIN resolves a citizen by lowercased CIN. A zero-value citizen means
// no match.
func (r *CitizenDynamoRepository) GetByCIN(ctx context.Context, cin string) (entities.Citizen, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(citizensCINIndex),
		KeyConditionExpression: aws.String("cin_lower = :cin"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cin": &types.AttributeValueMemberS{Value: strings.ToLower(cin)},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Citizen{}, err
	}
	if len(out.Items) == 0 {
		return entities.Citizen{}, nil
	}

	var it citizenItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Citizen{}, err
	}
	return fromCitizenItem(it), nil
}

func (r *CitizenDynamoRepository) ListAll(ctx context.Context) ([]entities.Citizen, error) {
	var citizens []entities.Citizen
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
			var it citizenItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			citizens = append(citizens, fromCitizenItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return citizens, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *CitizenDynamoRepository) Update(ctx context.Context, c entities.Citizen) (entities.Citizen, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: c.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET full_name = :full_name, cin = :cin, cin_lower = :cin_lower, address = :address, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":full_name":  &types.AttributeValueMemberS{Value: c.FullName},
			":cin":        &types.AttributeValueMemberS{Value: c.CIN},
			":cin_lower":  &types.AttributeValueMemberS{Value: strings.ToLower(c.CIN)},
			":address":    &types.AttributeValueMemberS{Value: c.Address},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(c.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Citizen{}, nil
		}
		return entities.Citizen{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Citizen{}, nil
	}

	var it citizenItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Citizen{}, err
	}
	return fromCitizenItem(it), nil
}

// SetFrozen is the status derivation routine's narrow write.
func (r *CitizenDynamoRepository) SetFrozen(ctx context.Context, id string, frozen bool) (entities.Citizen, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET frozen = :frozen, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":frozen":     &types.AttributeValueMemberBOOL{Value: frozen},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Citizen{}, nil
		}
		return entities.Citizen{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Citizen{}, nil
	}

	var it citizenItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Citizen{}, err
	}
	return fromCitizenItem(it), nil
}

func (r *CitizenDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toCitizenItem(c entities.Citizen) citizenItem {
	return citizenItem{
		ID:        c.ID,
		FullName:  c.FullName,
		CIN:       c.CIN,
		CINLower:  strings.ToLower(c.CIN),
		Address:   c.Address,
		Frozen:    c.Frozen,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
	}
}

func fromCitizenItem(it citizenItem) entities.Citizen {
	return entities.Citizen{
		ID:        it.ID,
		FullName:  it.FullName,
		CIN:       it.CIN,
		Address:   it.Address,
		Frozen:    it.Frozen,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
