package repository

import (
	"cmp"
	"context"
	"slices"
	"strconv"

	"insurance_backoffice/internal/domain/entities"
	"insurance_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type customerItem struct {
	ID        int64  `dynamodbav:"id"`
	FirstName string `dynamodbav:"first_name"`
	LastName  string `dynamodbav:"last_name"`
	Email     string `dynamodbav:"email"`
	Address   string `dynamodbav:"address"`
	Phone     string `dynamodbav:"phone"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Version   int64  `dynamodbav:"version"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - customers PK: id (number)
//   - counters PK: name (string), also holding one "email#<address>" lock
//     item per registered customer
//
// Ids come from the "customer" counter, so a rejected create leaves a gap.
type CustomerDynamoRepository struct {
	ddb    *dynamodb.Client
	tables Tables
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client, tables Tables) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{ddb: ddb, tables: tables}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	id, err := nextID(ctx, r.ddb, r.tables.Counters, string(entities.KindCustomer))
	if err != nil {
		return entities.Customer{}, err
	}
	c.ID = id

	av, err := attributevalue.MarshalMap(toCustomerItem(c, 1))
	if err != nil {
		return entities.Customer{}, err
	}
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			r.lockEmail(c.Email, id),
			newPut(r.tables.Customers, av),
		},
	})
	if err != nil {
		if failedAt(failedConditions(err), 0) {
			return entities.Customer{}, interfaces.ErrEmailTaken
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	it, err := r.get(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	return fromCustomerItem(it), nil
}

func (r *CustomerDynamoRepository) get(ctx context.Context, id int64) (customerItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Customers),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return customerItem{}, err
	}
	if len(out.Item) == 0 {
		return customerItem{}, nil
	}
	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return customerItem{}, err
	}
	return it, nil
}

// Update re-reads and retries when another writer bumped the version in between.
func (r *CustomerDynamoRepository) Update(ctx context.Context, id int64, mutate interfaces.CustomerMutation) (entities.Customer, error) {
	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		cur, err := r.get(ctx, id)
		if err != nil {
			return entities.Customer{}, err
		}
		if cur.ID == 0 {
			return entities.Customer{}, nil
		}
		next, err := mutate(fromCustomerItem(cur))
		if err != nil {
			return entities.Customer{}, err
		}
		next.ID = cur.ID

		av, err := attributevalue.MarshalMap(toCustomerItem(next, cur.Version+1))
		if err != nil {
			return entities.Customer{}, err
		}
		items := []types.TransactWriteItem{versionedPut(r.tables.Customers, av, cur.Version)}
		emailChanged := emailKey(cur.Email) != emailKey(next.Email)
		if emailChanged {
			items = append(items, r.lockEmail(next.Email, id), r.unlockEmail(cur.Email, id))
		}

		_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
		if err == nil {
			return next, nil
		}
		failed := failedConditions(err)
		switch {
		case failed == nil:
			return entities.Customer{}, err
		case emailChanged && failedAt(failed, 1) && !failedAt(failed, 0):
			return entities.Customer{}, interfaces.ErrEmailTaken
		}
	}
	return entities.Customer{}, interfaces.ErrConcurrentUpdate
}

func (r *CustomerDynamoRepository) List(ctx context.Context) ([]entities.Customer, error) {
	raw, err := scanAll(ctx, r.ddb, r.tables.Customers)
	if err != nil {
		return nil, err
	}
	var its []customerItem
	if err := attributevalue.UnmarshalListOfMaps(raw, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Customer, 0, len(its))
	for _, it := range its {
		out = append(out, fromCustomerItem(it))
	}
	slices.SortFunc(out, func(a, b entities.Customer) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r *CustomerDynamoRepository) Count(ctx context.Context) (int, error) {
	return countAll(ctx, r.ddb, r.tables.Customers)
}

func (r *CustomerDynamoRepository) lockEmail(email string, id int64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName: aws.String(r.tables.Counters),
			Item: map[string]types.AttributeValue{
				"name":        &types.AttributeValueMemberS{Value: emailKey(email)},
				"customer_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
			},
			ConditionExpression:      aws.String("attribute_not_exists(#name)"),
			ExpressionAttributeNames: map[string]string{"#name": "name"},
		},
	}
}

func (r *CustomerDynamoRepository) unlockEmail(email string, id int64) types.TransactWriteItem {
	return types.TransactWriteItem{
		Delete: &types.Delete{
			TableName: aws.String(r.tables.Counters),
			Key: map[string]types.AttributeValue{
				"name": &types.AttributeValueMemberS{Value: emailKey(email)},
			},
			ConditionExpression:      aws.String("#customer_id = :id"),
			ExpressionAttributeNames: map[string]string{"#customer_id": "customer_id"},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":id": &types.AttributeValueMemberN{Value: strconv.FormatInt(id, 10)},
			},
		},
	}
}

func toCustomerItem(c entities.Customer, version int64) customerItem {
	return customerItem{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Address:   c.Address,
		Phone:     c.Phone,
		CreatedAt: formatTime(c.CreatedAt),
		UpdatedAt: formatTime(c.UpdatedAt),
		Version:   version,
	}
}

func fromCustomerItem(it customerItem) entities.Customer {
	if it.ID == 0 {
		return entities.Customer{}
	}
	return entities.Customer{
		ID:        it.ID,
		FirstName: it.FirstName,
		LastName:  it.LastName,
		Email:     it.Email,
		Address:   it.Address,
		Phone:     it.Phone,
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
}
