package repository

import (
	"cmp"
	"context"
	"slices"
	"time"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const claimPolicyIndex = "policy_id-index"

type claimItem struct {
	ID            int64   `dynamodbav:"id"`
	Date          string  `dynamodbav:"date"`
	Description   string  `dynamodbav:"description"`
	ClaimedAmount string  `dynamodbav:"claimed_amount"`
	Status        string  `dynamodbav:"status"`
	SettledAmount *string `dynamodbav:"settled_amount,omitempty"`
	PolicyID      int64   `dynamodbav:"policy_id"`
	CreatedAt     string  `dynamodbav:"created_at"`
	UpdatedAt     string  `dynamodbav:"updated_at"`
	Version       int64   `dynamodbav:"version"`
}

// ClaimDynamoRepository persists Claim entities in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: policy_id-index (PK: policy_id)
type ClaimDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.IClaimRepository = (*ClaimDynamoRepository)(nil)

func NewClaimDynamoRepository(ddb *dynamodb.Client, tables Tables) *ClaimDynamoRepository {
	return &ClaimDynamoRepository{ddb: ddb, tables: tables}
}

func (r *ClaimDynamoRepository) Create(ctx context.Context, c entities.Claim) (entities.Claim, error) {
	id, err := nextID(ctx, r.ddb, r.tables.Counters, string(entities.KindClaim))
	if err != nil {
		return entities.Claim{}, err
	}
	c.ID = id

	av, err := attributevalue.MarshalMap(toClaimItem(c, 1))
	if err != nil {
		return entities.Claim{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			existsCheck(r.tables.Policies, c.PolicyID),
			newPut(r.tables.Claims, av),
		},
	})
	if err != nil {
		if failedAt(failedConditions(err), 0) {
			return entities.Claim{}, interfaces.ErrForeignKeyViolation
		}
		return entities.Claim{}, err
	}
	return c, nil
}

func (r *ClaimDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Claim, error) {
	it, err := r.get(ctx, id)
	if err != nil {
		return entities.Claim{}, err
	}
	return fromClaimItem(it), nil
}

func (r *ClaimDynamoRepository) get(ctx context.Context, id int64) (claimItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Claims),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return claimItem{}, err
	}
	if len(out.Item) == 0 {
		return claimItem{}, nil
	}
	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return claimItem{}, err
	}
	return it, nil
}

// Update runs mutate against the latest stored claim; a lost version race
// re-reads, so status transitions are always checked against fresh state.
func (r *ClaimDynamoRepository) Update(ctx context.Context, id int64, mutate interfaces.ClaimMutation) (entities.Claim, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		cur, err := r.get(ctx, id)
		if err != nil {
			return entities.Claim{}, err
		}
		if cur.ID == 0 {
			return entities.Claim{}, nil
		}
		next, err := mutate(fromClaimItem(cur))
		if err != nil {
			return entities.Claim{}, err
		}
		next.ID = cur.ID

		av, err := attributevalue.MarshalMap(toClaimItem(next, cur.Version+1))
		if err != nil {
			return entities.Claim{}, err
		}
		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
			TransactItems: []types.TransactWriteItem{
				versionedPut(r.tables.Claims, av, cur.Version),
				existsCheck(r.tables.Policies, next.PolicyID),
			},
		})
		if err == nil {
			return next, nil
		}
		failed := failedConditions(err)
		switch {
		case failed == nil:
			return entities.Claim{}, err
		case failedAt(failed, 1):
			return entities.Claim{}, interfaces.ErrForeignKeyViolation
		}
	}
	return entities.Claim{}, interfaces.ErrConcurrentUpdate
}

func (r *ClaimDynamoRepository) List(ctx context.Context) ([]entities.Claim, error) {
	raw, err := scanAll(ctx, r.ddb, r.tables.Claims)
	if err != nil {
		return nil, err
	}
	return claimsFromItems(raw)
}

func (r *ClaimDynamoRepository) ListByPolicyID(ctx context.Context, policyID int64) ([]entities.Claim, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tables.Claims, claimPolicyIndex, "policy_id", policyID)
	if err != nil {
		return nil, err
	}
	return claimsFromItems(raw)
}

func (r *ClaimDynamoRepository) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.ddb, r.tables.Claims)
}

func claimsFromItems(raw []map[string]types.AttributeValue) ([]entities.Claim, error) {
	var its []claimItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Claim, 0, len(its))
	for _, it := range its {
		out = append(out, fromClaimItem(it))
	}
	slices.SortFunc(out, func(a, b entities.Claim) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func toClaimItem(c entities.Claim, version int64) claimItem {
	it := claimItem{
		ID:            c.ID,
		Date:          c.Date.Format(entities.DateLayout),
		Description:   c.Description,
		ClaimedAmount: decimalToString(c.ClaimedAmount),
		Status:        string(c.Status),
		PolicyID:      c.PolicyID,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
		Version:       version,
	}
	if c.SettledAmount != nil {
		s := decimalToString(*c.SettledAmount)
		it.SettledAmount = &s
	}
	return it
}

func fromClaimItem(it claimItem) entities.Claim {
	if it.ID == 0 {
		return entities.Claim{}
	}
	date, _ := time.ParseInLocation(entities.DateLayout, it.Date, time.UTC)
	c := entities.Claim{
		ID:            it.ID,
		Date:          date,
		Description:   it.Description,
		ClaimedAmount: decimalFromString(it.ClaimedAmount),
		Status:        entities.ClaimStatus(it.Status),
		PolicyID:      it.PolicyID,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.SettledAmount != nil {
		d := decimalFromString(*it.SettledAmount)
		c.SettledAmount = &d
	}
	return c
}
