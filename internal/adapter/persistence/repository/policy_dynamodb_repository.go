package repository

import (
	"cmp"
	"context"
	"slices"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const policyCustomerIndex = "customer_id-index"

type policyItem struct {
	ID             int64  `dynamodbav:"id"`
	Type           string `dynamodbav:"type"`
	CoverageAmount string `dynamodbav:"coverage_amount"`
	CustomerID     int64  `dynamodbav:"customer_id"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
	Version        int64  `dynamodbav:"version"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: customer_id-index (PK: customer_id)
//
// The owner is checked in the same transaction as the write.
type PolicyDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client, tables Tables) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	id, err := nextID(ctx, r.ddb, r.tables.Counters, string(entities.KindPolicy))
	if err != nil {
		return entities.Policy{}, err
	}
	p.ID = id

	av, err := attributevalue.MarshalMap(toPolicyItem(p, 1))
	if err != nil {
		return entities.Policy{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			existsCheck(r.tables.Customers, p.CustomerID),
			newPut(r.tables.Policies, av),
		},
	})
	if err != nil {
		if failedAt(failedConditions(err), 0) {
			return entities.Policy{}, interfaces.ErrForeignKeyViolation
		}
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Policy, error) {
	it, err := r.get(ctx, id)
	if err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) get(ctx context.Context, id int64) (policyItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Policies),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return policyItem{}, err
	}
	if len(out.Item) == 0 {
		return policyItem{}, nil
	}
	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return policyItem{}, err
	}
	return it, nil
}

func (r *PolicyDynamoRepository) Update(ctx context.Context, id int64, mutate interfaces.PolicyMutation) (entities.Policy, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		cur, err := r.get(ctx, id)
		if err != nil {
			return entities.Policy{}, err
		}
		if cur.ID == 0 {
			return entities.Policy{}, nil
		}
		next, err := mutate(fromPolicyItem(cur))
		if err != nil {
			return entities.Policy{}, err
		}
		next.ID = cur.ID

		av, err := attributevalue.MarshalMap(toPolicyItem(next, cur.Version+1))
		if err != nil {
			return entities.Policy{}, err
		}
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				versionedPut(r.tables.Policies, av, cur.Version),
				existsCheck(r.tables.Customers, next.CustomerID),
			},
		})
		if err == nil {
			return next, nil
		}
		failed := failedConditions(err)
		switch {
		case failed == nil:
			return entities.Policy{}, err
		case failedAt(failed, 1):
			return entities.Policy{}, interfaces.ErrForeignKeyViolation
		}
	}
	return entities.Policy{}, interfaces.ErrConcurrentUpdate
}

func (r *PolicyDynamoRepository) List(ctx context.Context) ([]entities.Policy, error) {
	raw, err := scanAll(ctx, r.ddb, r.tables.Policies)
	if err != nil {
		return nil, err
	}
	return policiesFromItems(raw)
}

func (r *PolicyDynamoRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Policy, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tables.Policies, policyCustomerIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	return policiesFromItems(raw)
}

func (r *PolicyDynamoRepository) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.ddb, r.tables.Policies)
}

func policiesFromItems(raw []map[string]types.AttributeValue) ([]entities.Policy, error) {
	var its []policyItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Policy, 0, len(its))
	for _, it := range its {
		out = append(out, fromPolicyItem(it))
	}
	slices.SortFunc(out, func(a, b entities.Policy) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func toPolicyItem(p entities.Policy, version int64) policyItem {
	return policyItem{
		ID:             p.ID,
		Type:           string(p.Type),
		CoverageAmount: decimalToString(p.CoverageAmount),
		CustomerID:     p.CustomerID,
		CreatedAt:      formatTime(p.CreatedAt),
		UpdatedAt:      formatTime(p.UpdatedAt),
		Version:        version,
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	if it.ID == 0 {
		return entities.Policy{}
	}
	return entities.Policy{
		ID:             it.ID,
		Type:           entities.PolicyType(it.Type),
		CoverageAmount: decimalFromString(it.CoverageAmount),
		CustomerID:     it.CustomerID,
		CreatedAt:      parseTime(it.CreatedAt),
		UpdatedAt:      parseTime(it.UpdatedAt),
	}
}
