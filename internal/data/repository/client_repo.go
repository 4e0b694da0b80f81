package repository

import (
	"context"
	"fmt"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/pkg/database"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ClientRepository reads the frequent-client directory. The directory is
// collaborator data consumed read-only.
type ClientRepository interface {
	ListAll(ctx context.Context) ([]*entity.FrequentClient, error)
}

type clientRepository struct {
	db     database.DynamoIface
	tables utils.TableNames
	log    *zap.Logger
}

func NewClientRepository(db database.DynamoIface, tables utils.TableNames, log *zap.Logger) ClientRepository {
	return &clientRepository{
		db:     db,
		tables: tables,
		log:    log.With(zap.String("repository", "client")),
	}
}

func (r *clientRepository) ListAll(ctx context.Context) ([]*entity.FrequentClient, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tables.FrequentClients),
	})
	if err != nil {
		r.log.Error("Failed to list frequent clients", zap.Error(err))
		return nil, fmt.Errorf("list frequent clients: %w", err)
	}

	var clients []*entity.FrequentClient
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &clients); err != nil {
		return nil, fmt.Errorf("unmarshal frequent clients: %w", err)
	}

	return clients, nil
}
