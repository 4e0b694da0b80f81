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
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	// ConvertHold atomically transforms the matching unexpired hold into a
	// RESERVED lock and inserts the reservation record. On any failed
	// precondition the whole transaction aborts and the slot is untouched.
	ConvertHold(ctx context.Context, reservation *entity.Reservation, holdID string, now time.Time) error
	FindByID(ctx context.Context, eventDate, reservationID string) (*entity.Reservation, error)
	// Cancel flips the reservation to CANCELLED, conditioned on it being
	// CONFIRMED. Double cancellation returns ErrConflict.
	Cancel(ctx context.Context, eventDate, reservationID, reason, actor string, at time.Time) error
	ListByDate(ctx context.Context, eventDate string) ([]*entity.Reservation, error)
}

type reservationRepository struct {
	db     database.DynamoIface
	tables utils.TableNames
	log    *zap.Logger
}

func NewReservationRepository(db database.DynamoIface, tables utils.TableNames, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:     db,
		tables: tables,
		log:    log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) ConvertHold(ctx context.Context, reservation *entity.Reservation, holdID string, now time.Time) error {
	item, err := attributevalue.MarshalMap(reservation)
	if err != nil {
		return fmt.Errorf("marshal reservation %s: %w", reservation.ReservationID, err)
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tables.TableLocks),
					Key: map[string]types.AttributeValue{
						"eventDate": &types.AttributeValueMemberS{Value: reservation.EventDate},
						"tableId":   &types.AttributeValueMemberS{Value: reservation.TableID},
					},
					// only a live hold with the caller-supplied id converts
					ConditionExpression: aws.String("lockType = :hold AND holdId = :hid AND expiresAt >= :now"),
					UpdateExpression:    aws.String("SET lockType = :reserved, reservationId = :rid, customerName = :cn, phone = :ph REMOVE expiresAt, holdId"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":hold":     &types.AttributeValueMemberS{Value: string(entity.LockTypeHold)},
						":hid":      &types.AttributeValueMemberS{Value: holdID},
						":now":      &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
						":reserved": &types.AttributeValueMemberS{Value: string(entity.LockTypeReserved)},
						":rid":      &types.AttributeValueMemberS{Value: reservation.ReservationID},
						":cn":       &types.AttributeValueMemberS{Value: reservation.CustomerName},
						":ph":       &types.AttributeValueMemberS{Value: reservation.Phone},
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tables.Reservations),
					Item:      item,
					// fresh random id, asserted defensively
					ConditionExpression: aws.String("attribute_not_exists(reservationId)"),
				},
			},
		},
	})

	if database.IsTransactionCanceled(err) {
		r.log.Warn("Hold conversion rejected",
			zap.String("event_date", reservation.EventDate),
			zap.String("table_id", reservation.TableID),
			zap.String("hold_id", holdID),
		)
		return utils.ConflictErrorf("hold %s expired, already consumed, or mismatched", holdID)
	}
	if err != nil {
		r.log.Error("Failed to convert hold",
			zap.Error(err),
			zap.String("event_date", reservation.EventDate),
			zap.String("table_id", reservation.TableID),
		)
		return fmt.Errorf("convert hold %s: %w", holdID, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, eventDate, reservationID string) (*entity.Reservation, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Reservations),
		Key: map[string]types.AttributeValue{
			"eventDate":     &types.AttributeValueMemberS{Value: eventDate},
			"reservationId": &types.AttributeValueMemberS{Value: reservationID},
		},
	})
	if err != nil {
		r.log.Error("Failed to find reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("find reservation %s: %w", reservationID, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var reservation entity.Reservation
	if err := attributevalue.UnmarshalMap(out.Item, &reservation); err != nil {
		return nil, fmt.Errorf("unmarshal reservation %s: %w", reservationID, err)
	}

	return &reservation, nil
}

func (r *reservationRepository) Cancel(ctx context.Context, eventDate, reservationID, reason, actor string, at time.Time) error {
	_, err := r.db.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tables.Reservations),
		Key: map[string]types.AttributeValue{
			"eventDate":     &types.AttributeValueMemberS{Value: eventDate},
			"reservationId": &types.AttributeValueMemberS{Value: reservationID},
		},
		ConditionExpression: aws.String("#st = :confirmed"),
		UpdateExpression:    aws.String("SET #st = :cancelled, cancelReason = :reason, cancelledAt = :at, cancelledBy = :actor"),
		ExpressionAttributeNames: map[string]string{
			"#st": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":confirmed": &types.AttributeValueMemberS{Value: string(entity.ReservationStatusConfirmed)},
			":cancelled": &types.AttributeValueMemberS{Value: string(entity.ReservationStatusCancelled)},
			":reason":    &types.AttributeValueMemberS{Value: reason},
			":at":        &types.AttributeValueMemberS{Value: at.UTC().Format(time.RFC3339Nano)},
			":actor":     &types.AttributeValueMemberS{Value: actor},
		},
	})

	if database.IsConditionalCheckFailed(err) {
		return utils.ConflictErrorf("reservation %s already cancelled", reservationID)
	}
	if err != nil {
		r.log.Error("Failed to cancel reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return fmt.Errorf("cancel reservation %s: %w", reservationID, err)
	}

	return nil
}

func (r *reservationRepository) ListByDate(ctx context.Context, eventDate string) ([]*entity.Reservation, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Reservations),
		KeyConditionExpression: aws.String("eventDate = :date"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date": &types.AttributeValueMemberS{Value: eventDate},
		},
	})
	if err != nil {
		r.log.Error("Failed to list reservations",
			zap.Error(err),
			zap.String("event_date", eventDate),
		)
		return nil, fmt.Errorf("list reservations for %s: %w", eventDate, err)
	}

	var reservations []*entity.Reservation
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &reservations); err != nil {
		return nil, fmt.Errorf("unmarshal reservations for %s: %w", eventDate, err)
	}

	return reservations, nil
}
