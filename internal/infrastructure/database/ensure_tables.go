package database

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// EnsureTables creates the service tables when they do not exist yet. It is
// meant for local DynamoDB; against AWS the tables are provisioned by
// infrastructure and this becomes a no-op. Creation only runs when
// DYNAMODB_ENDPOINT is set, so a misconfigured deploy never mutates a real
// account.
func EnsureTables(ddb *dynamodb.Client) {
	if os.Getenv("DYNAMODB_ENDPOINT") == "" {
		return
	}

	ctx := context.Background()
	for _, spec := range tableSpecs() {
		_, err := ddb.CreateTable(ctx, spec)
		if err != nil {
			var exists *types.ResourceInUseException
			if errors.As(err, &exists) {
				continue
			}
			log.Fatalf("failed to create table %s: %v", aws.ToString(spec.TableName), err)
		}
		log.Printf("[database] created table %s", aws.ToString(spec.TableName))
	}
}

func tableSpecs() []*dynamodb.CreateTableInput {
	throughput := &types.ProvisionedThroughput{
		ReadCapacityUnits:  aws.Int64(5),
		WriteCapacityUnits: aws.Int64(5),
	}

	return []*dynamodb.CreateTableInput{
		{
			TableName: aws.String(getenvDefault("CITIZENS_TABLE", "citizens")),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("cin_lower"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String("cin-index"),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("cin_lower"), KeyType: types.KeyTypeHash},
					},
					Projection:            &types.Projection{ProjectionType: types.ProjectionTypeAll},
					ProvisionedThroughput: throughput,
				},
			},
			ProvisionedThroughput: throughput,
		},
		{
			TableName: aws.String(getenvDefault("RECEIPTS_TABLE", "receipts")),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("citizen_id"), AttributeType: types.ScalarAttributeTypeS},
				{AttributeName: aws.String("number_year"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				{
					IndexName: aws.String("citizen_id-index"),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("citizen_id"), KeyType: types.KeyTypeHash},
					},
					Projection:            &types.Projection{ProjectionType: types.ProjectionTypeAll},
					ProvisionedThroughput: throughput,
				},
				{
					IndexName: aws.String("number_year-index"),
					KeySchema: []types.KeySchemaElement{
						{AttributeName: aws.String("number_year"), KeyType: types.KeyTypeHash},
					},
					Projection:            &types.Projection{ProjectionType: types.ProjectionTypeAll},
					ProvisionedThroughput: throughput,
				},
			},
			ProvisionedThroughput: throughput,
		},
		{
			TableName: aws.String(getenvDefault("RECEIPT_NUMBERS_TABLE", "receipt_numbers")),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("number"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("number"), KeyType: types.KeyTypeHash},
			},
			ProvisionedThroughput: throughput,
		},
		{
			TableName: aws.String(getenvDefault("ATTESTATIONS_TABLE", "attestations")),
			AttributeDefinitions: []types.AttributeDefinition{
				{AttributeName: aws.String("id"), AttributeType: types.ScalarAttributeTypeS},
			},
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeHash},
			},
			ProvisionedThroughput: throughput,
		},
	}
}
