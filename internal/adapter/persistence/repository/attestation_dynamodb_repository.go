package repository

import (
	"context"
	"errors"

	"assainissement/internal/domain/entities"
	"assainissement/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAttestationsTableName = "attestations"

type attestationItem struct {
	ID        string `dynamodbav:"id"`
	Type      bool   `dynamodbav:"type"`
	Number    string `dynamodbav:"attestation_number"`
	Name      string `dynamodbav:"name"`
	ITP       string `dynamodbav:"itp"`
	IF        string `dynamodbav:"if"`
	Identity  string `dynamodbav:"identity"`
	Activity  string `dynamodbav:"activity"`
	Address   string `dynamodbav:"address"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// AttestationDynamoRepository persists FiscalAttestation entities in DynamoDB.
//
// Table requirements:
//   - PK: id

type AttestationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAttestationRepository = (*AttestationDynamoRepository)(nil)

func NewAttestationDynamoRepository(ddb *dynamodb.Client) *AttestationDynamoRepository {
	return &AttestationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ATTESTATIONS_TABLE", defaultAttestationsTableName),
	}
}

func (r *AttestationDynamoRepository) Create(ctx context.Context, a entities.FiscalAttestation) (entities.FiscalAttestation, error) {
	av, err := attributevalue.MarshalMap(toAttestationItem(a))
	if err != nil {
		return entities.FiscalAttestation{}, err
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
		return entities.FiscalAttestation{}, err
	}
	return a, nil
}

func (r *AttestationDynamoRepository) GetByID(ctx context.Context, id string) (entities.FiscalAttestation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.FiscalAttestation{}, err
	}
	if len(out.Item) == 0 {
		return entities.FiscalAttestation{}, nil
	}

	var it attestationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.FiscalAttestation{}, err
	}
	return fromAttestationItem(it), nil
}

func (r *AttestationDynamoRepository) ListAll(ctx context.Context) ([]entities.FiscalAttestation, error) {
	var attestations []entities.FiscalAttestation
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
			var it attestationItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			attestations = append(attestations, fromAttestationItem(it))
		}
		if out.LastEvaluatedKey == nil {
			return attestations, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (r *AttestationDynamoRepository) Update(ctx context.Context, a entities.FiscalAttestation) (entities.FiscalAttestation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: a.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression: aws.String("SET #type = :type, #name = :name, itp = :itp, #if = :if, " +
			"#identity = :identity, activity = :activity, address = :address, updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#type":     "type",
			"#name":     "name",
			"#if":       "if",
			"#identity": "identity",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":type":       &types.AttributeValueMemberBOOL{Value: a.Type},
			":name":       &types.AttributeValueMemberS{Value: a.Name},
			":itp":        &types.AttributeValueMemberS{Value: a.ITP},
			":if":         &types.AttributeValueMemberS{Value: a.IF},
			":identity":   &types.AttributeValueMemberS{Value: a.Identity},
			":activity":   &types.AttributeValueMemberS{Value: a.Activity},
			":address":    &types.AttributeValueMemberS{Value: a.Address},
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(a.UpdatedAt)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.FiscalAttestation{}, nil
		}
		return entities.FiscalAttestation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.FiscalAttestation{}, nil
	}

	var it attestationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.FiscalAttestation{}, err
	}
	return fromAttestationItem(it), nil
}

func (r *AttestationDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toAttestationItem(a entities.FiscalAttestation) attestationItem {
	return attestationItem{
		ID:        a.ID,
		Type:      a.Type,
		Number:    a.Number,
		Name:      a.Name,
		ITP:       a.ITP,
		IF:        a.IF,
		Identity:  a.Identity,
		Activity:  a.Activity,
		Address:   a.Address,
		CreatedAt: formatTime(a.CreatedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
}

func fromAttestationItem(it attestationItem) entities.FiscalAttestation {
	return entities.FiscalAttestation{
		ID:        it.ID,
		Type:      it.Type,
		Number:    it.Number,
		Name:      it.Name,
		ITP:       it.ITP,
		IF:        it.IF,
		Identity:  it.Identity,
		Activity:  it.Activity,
		Address:   it.Address,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
