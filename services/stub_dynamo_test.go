package services

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// stubDynamoClient implements DynamoAPI with per-call hooks so tests can
// script store behavior. Unhooked calls fail loudly.
type stubDynamoClient struct {
	putItem    func(params *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	getItem    func(params *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	updateItem func(params *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(params *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(params *dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

var errUnexpectedCall = errors.New("unexpected DynamoDB call")

func (s *stubDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if s.putItem == nil {
		return nil, errUnexpectedCall
	}
	return s.putItem(params)
}

func (s *stubDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if s.getItem == nil {
		return nil, errUnexpectedCall
	}
	return s.getItem(params)
}

func (s *stubDynamoClient) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if s.updateItem == nil {
		return nil, errUnexpectedCall
	}
	return s.updateItem(params)
}

func (s *stubDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if s.deleteItem == nil {
		return nil, errUnexpectedCall
	}
	return s.deleteItem(params)
}

func (s *stubDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if s.query == nil {
		return nil, errUnexpectedCall
	}
	return s.query(params)
}

func (s *stubDynamoClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if s.scan == nil {
		return nil, errUnexpectedCall
	}
	return s.scan(params)
}
