package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/pkg/database"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// CRMRepository maintains the per-phone aggregate after successful
// reservations. Fire-and-forget from the caller's perspective: a failed
// upsert must never roll back the reservation.
type CRMRepository interface {
	UpsertAfterReservation(ctx context.Context, reservation *entity.Reservation) error
}

type crmRepository struct {
	db     database.DynamoIface
	tables utils.TableNames
	log    *zap.Logger
}

func NewCRMRepository(db database.DynamoIface, tables utils.TableNames, log *zap.Logger) CRMRepository {
	return &crmRepository{
		db:     db,
		tables: tables,
		log:    log.With(zap.String("repository", "crm")),
	}
}

func (r *crmRepository) UpsertAfterReservation(ctx context.Context, reservation *entity.Reservation) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tables.CRMProfiles),
		Key: map[string]types.AttributeValue{
			"phone": &types.AttributeValueMemberS{Value: reservation.Phone},
		},
		UpdateExpression: aws.String("ADD totalSpend :amount, reservationCount :one SET customerName = :cn, lastEventDate = :date, lastTableId = :table, updatedAt = :at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":amount": &types.AttributeValueMemberN{Value: strconv.FormatFloat(reservation.DepositAmount, 'f', -1, 64)},
			":one":    &types.AttributeValueMemberN{Value: "1"},
			":cn":     &types.AttributeValueMemberS{Value: reservation.CustomerName},
			":date":   &types.AttributeValueMemberS{Value: reservation.EventDate},
			":table":  &types.AttributeValueMemberS{Value: reservation.TableID},
			":at":     &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		r.log.Error("Failed to upsert CRM profile",
			zap.Error(err),
			zap.String("phone", reservation.Phone),
			zap.String("reservation_id", reservation.ReservationID),
		)
		return fmt.Errorf("upsert crm profile %s: %w", reservation.Phone, err)
	}

	return nil
}
