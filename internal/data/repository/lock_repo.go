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

type LockRepository interface {
	// AcquireHold writes the hold conditioned on the slot being vacant or
	// holding a genuinely expired HOLD. Any live lock returns ErrConflict.
	AcquireHold(ctx context.Context, lock *entity.TableLock, now time.Time) error
	Find(ctx context.Context, eventDate, tableID string) (*entity.TableLock, error)
	// ReleaseHold deletes the slot conditioned on lockType=HOLD. A missing
	// or non-HOLD slot is treated as success; it never destroys a
	// reservation's lock.
	ReleaseHold(ctx context.Context, eventDate, tableID string) error
	// ReleaseReserved best-effort deletes a RESERVED slot referencing the
	// given reservation. A failed precondition is swallowed; the slot is
	// self-healing via the read-time cross-check.
	ReleaseReserved(ctx context.Context, eventDate, tableID, reservationID string) error
	// ListByDate returns raw lock records including expired holds; callers
	// apply the lazy-expiry interpretation.
	ListByDate(ctx context.Context, eventDate string) ([]*entity.TableLock, error)
}

type lockRepository struct {
	db     database.DynamoIface
	tables utils.TableNames
	log    *zap.Logger
}

func NewLockRepository(db database.DynamoIface, tables utils.TableNames, log *zap.Logger) LockRepository {
	return &lockRepository{
		db:     db,
		tables: tables,
		log:    log.With(zap.String("repository", "lock")),
	}
}

func (r *lockRepository) AcquireHold(ctx context.Context, lock *entity.TableLock, now time.Time) error {
	item, err := attributevalue.MarshalMap(lock)
	if err != nil {
		return fmt.Errorf("marshal lock %s/%s: %w", lock.EventDate, lock.TableID, err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tables.TableLocks),
		Item:      item,
		// vacant, or an expired hold that is silently reclaimable
		ConditionExpression: aws.String("attribute_not_exists(lockType) OR (lockType = :hold AND expiresAt < :now)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hold": &types.AttributeValueMemberS{Value: string(entity.LockTypeHold)},
			":now":  &types.AttributeValueMemberN{Value: strconv.FormatInt(now.Unix(), 10)},
		},
	})

	if database.IsConditionalCheckFailed(err) {
		r.log.Warn("Table already held or reserved",
			zap.String("event_date", lock.EventDate),
			zap.String("table_id", lock.TableID),
		)
		return utils.ConflictErrorf("table %s already held or reserved", lock.TableID)
	}
	if err != nil {
		r.log.Error("Failed to acquire hold",
			zap.Error(err),
			zap.String("event_date", lock.EventDate),
			zap.String("table_id", lock.TableID),
		)
		return fmt.Errorf("acquire hold %s/%s: %w", lock.EventDate, lock.TableID, err)
	}

	return nil
}

func (r *lockRepository) Find(ctx context.Context, eventDate, tableID string) (*entity.TableLock, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.TableLocks),
		Key:       lockKey(eventDate, tableID),
	})
	if err != nil {
		r.log.Error("Failed to find lock",
			zap.Error(err),
			zap.String("event_date", eventDate),
			zap.String("table_id", tableID),
		)
		return nil, fmt.Errorf("find lock %s/%s: %w", eventDate, tableID, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var lock entity.TableLock
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return nil, fmt.Errorf("unmarshal lock %s/%s: %w", eventDate, tableID, err)
	}

	return &lock, nil
}

func (r *lockRepository) ReleaseHold(ctx context.Context, eventDate, tableID string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tables.TableLocks),
		Key:                 lockKey(eventDate, tableID),
		ConditionExpression: aws.String("lockType = :hold"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":hold": &types.AttributeValueMemberS{Value: string(entity.LockTypeHold)},
		},
	})

	// idempotent at the API layer: already gone or already converted
	if database.IsConditionalCheckFailed(err) {
		r.log.Debug("Release skipped, slot not a hold",
			zap.String("event_date", eventDate),
			zap.String("table_id", tableID),
		)
		return nil
	}
	if err != nil {
		r.log.Error("Failed to release hold",
			zap.Error(err),
			zap.String("event_date", eventDate),
			zap.String("table_id", tableID),
		)
		return fmt.Errorf("release hold %s/%s: %w", eventDate, tableID, err)
	}

	return nil
}

func (r *lockRepository) ReleaseReserved(ctx context.Context, eventDate, tableID, reservationID string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tables.TableLocks),
		Key:                 lockKey(eventDate, tableID),
		ConditionExpression: aws.String("lockType = :reserved AND reservationId = :rid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reserved": &types.AttributeValueMemberS{Value: string(entity.LockTypeReserved)},
			":rid":      &types.AttributeValueMemberS{Value: reservationID},
		},
	})

	if database.IsConditionalCheckFailed(err) {
		r.log.Debug("Reserved lock already gone",
			zap.String("event_date", eventDate),
			zap.String("table_id", tableID),
			zap.String("reservation_id", reservationID),
		)
		return nil
	}
	if err != nil {
		r.log.Error("Failed to release reserved lock",
			zap.Error(err),
			zap.String("event_date", eventDate),
			zap.String("table_id", tableID),
		)
		return fmt.Errorf("release reserved lock %s/%s: %w", eventDate, tableID, err)
	}

	return nil
}

func (r *lockRepository) ListByDate(ctx context.Context, eventDate string) ([]*entity.TableLock, error) {
	out, err := r.db.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.TableLocks),
		KeyConditionExpression: aws.String("eventDate = :date"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date": &types.AttributeValueMemberS{Value: eventDate},
		},
	})
	if err != nil {
		r.log.Error("Failed to list locks",
			zap.Error(err),
			zap.String("event_date", eventDate),
		)
		return nil, fmt.Errorf("list locks for %s: %w", eventDate, err)
	}

	var locks []*entity.TableLock
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &locks); err != nil {
		return nil, fmt.Errorf("unmarshal locks for %s: %w", eventDate, err)
	}

	return locks, nil
}

func lockKey(eventDate, tableID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"eventDate": &types.AttributeValueMemberS{Value: eventDate},
		"tableId":   &types.AttributeValueMemberS{Value: tableID},
	}
}
