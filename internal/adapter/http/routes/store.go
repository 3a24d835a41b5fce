package routes

import (
	"context"
	"fmt"

	"insurance_backoffice/internal/adapter/persistence/memory"
	"insurance_backoffice/internal/adapter/persistence/postgres"
	"insurance_backoffice/internal/adapter/persistence/repository"
	"insurance_backoffice/internal/infrastructure/config"
	"insurance_backoffice/internal/infrastructure/database"
	"insurance_backoffice/internal/usecase/interfaces"
)

// Repositories is one store backend, seen through the repository ports.
type Repositories struct {
	Customers interfaces.ICustomerRepository
	Policies  interfaces.IPolicyRepository
	Claims    interfaces.IClaimRepository
}

// MemoryRepositories returns a fresh in-process store.
func MemoryRepositories() Repositories {
	db := memory.NewDB()
	return Repositories{
		Customers: memory.NewCustomerRepository(db),
		Policies:  memory.NewPolicyRepository(db),
		Claims:    memory.NewClaimRepository(db),
	}
}

func openStore(ctx context.Context, cfg config.Config) (Repositories, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return MemoryRepositories(), nil

	case config.StoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return Repositories{}, err
		}
		tables := repository.Tables{
			Customers: cfg.DynamoDB.CustomersTable,
			Policies:  cfg.DynamoDB.PoliciesTable,
			Claims:    cfg.DynamoDB.ClaimsTable,
			Counters:  cfg.DynamoDB.CountersTable,
		}
		return Repositories{
			Customers: repository.NewCustomerDynamoRepository(ddb, tables),
			Policies:  repository.NewPolicyDynamoRepository(ddb, tables),
			Claims:    repository.NewClaimDynamoRepository(ddb, tables),
		}, nil

	case config.StorePostgres:
		db, err := database.ConnectPostgres(cfg.Postgres)
		if err != nil {
			return Repositories{}, err
		}
		if err := postgres.Migrate(db); err != nil {
			return Repositories{}, err
		}
		return Repositories{
			Customers: postgres.NewCustomerRepo(db),
			Policies:  postgres.NewPolicyRepo(db),
			Claims:    postgres.NewClaimRepo(db),
		}, nil
	}
	return Repositories{}, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
