package dynamostore

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeAPI is an in-memory table that honours the condition expressions the
// repository issues: attribute_not_exists on put and a status guard on update.
type fakeAPI struct {
	mu       sync.Mutex
	items    map[string]map[string]types.AttributeValue
	pageSize int
	failWith error
	tables   map[string]bool
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{items: make(map[string]map[string]types.AttributeValue), tables: make(map[string]bool)}
}

func str(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func clone(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func (f *fakeAPI) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	key := str(in.Item["gateway_order_id"])
	if _, exists := f.items[key]; exists && in.ConditionExpression != nil {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[key] = clone(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeAPI) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	item, ok := f.items[str(in.Key["gateway_order_id"])]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: clone(item)}, nil
}

func (f *fakeAPI) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	item, ok := f.items[str(in.Key["gateway_order_id"])]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
	}
	if str(item["status"]) != str(in.ExpressionAttributeValues[":from"]) {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("status"), Item: clone(item)}
	}

	old := clone(item)
	item["status"] = in.ExpressionAttributeValues[":to"]
	item["updated_at"] = in.ExpressionAttributeValues[":now"]
	if pid, ok := in.ExpressionAttributeValues[":pid"]; ok {
		item["gateway_payment_id"] = pid
	}
	return &dynamodb.UpdateItemOutput{Attributes: old}, nil
}

func (f *fakeAPI) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	userID := str(in.ExpressionAttributeValues[":uid"])
	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if str(item["user_id"]) == userID {
			matched = append(matched, clone(item))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if aws.ToBool(in.ScanIndexForward) {
			return str(matched[i]["created_at"]) < str(matched[j]["created_at"])
		}
		return str(matched[i]["created_at"]) > str(matched[j]["created_at"])
	})

	start := 0
	if in.ExclusiveStartKey != nil {
		for i, item := range matched {
			if str(item["gateway_order_id"]) == str(in.ExclusiveStartKey["gateway_order_id"]) {
				start = i + 1
			}
		}
	}
	end := len(matched)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.QueryOutput{Items: matched[start:end]}
	if end < len(matched) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"gateway_order_id": matched[end-1]["gateway_order_id"],
		}
	}
	return out, nil
}

func (f *fakeAPI) CreateTable(_ context.Context, in *dynamodb.CreateTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[aws.ToString(in.TableName)] = true
	return &dynamodb.CreateTableOutput{}, nil
}

func (f *fakeAPI) DescribeTable(_ context.Context, in *dynamodb.DescribeTableInput, _ ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tables[aws.ToString(in.TableName)] {
		return nil, &types.ResourceNotFoundException{Message: aws.String("no table")}
	}
	return &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableName: in.TableName, TableStatus: types.TableStatusActive},
	}, nil
}

var errThrottled = errors.New("ProvisionedThroughputExceededException: rate exceeded")
