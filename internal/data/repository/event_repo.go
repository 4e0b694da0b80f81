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
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

type EventRepository interface {
	// CreateWithDateLock inserts the event and its date-lock in one atomic
	// transaction. Returns ErrConflict when the date is already owned.
	CreateWithDateLock(ctx context.Context, event *entity.Event) error
	FindByID(ctx context.Context, eventID string) (*entity.Event, error)
	FindDateLock(ctx context.Context, eventDate string) (*entity.DateLock, error)
	// FindByDate resolves date-lock then event. Returns nil when no lock
	// exists for the date.
	FindByDate(ctx context.Context, eventDate string) (*entity.Event, error)
	// UpdateInPlace replaces the event record without touching the date-lock.
	UpdateInPlace(ctx context.Context, event *entity.Event) error
	// Deactivate atomically writes the INACTIVE event and deletes the
	// date-lock, conditioned on the lock still referencing this event.
	Deactivate(ctx context.Context, event *entity.Event) error
	// Reactivate atomically recreates the date-lock (insert-if-absent) and
	// writes the ACTIVE event. Returns ErrConflict when the date is now
	// owned by a different event.
	Reactivate(ctx context.Context, event *entity.Event) error
	// DeleteWithDateLock removes an ACTIVE event together with its lock.
	DeleteWithDateLock(ctx context.Context, event *entity.Event) error
	// Delete removes an INACTIVE event record only.
	Delete(ctx context.Context, eventID string) error
	List(ctx context.Context) ([]*entity.Event, error)
}

type eventRepository struct {
	db     database.DynamoIface
	tables utils.TableNames
	log    *zap.Logger
}

func NewEventRepository(db database.DynamoIface, tables utils.TableNames, log *zap.Logger) EventRepository {
	return &eventRepository{
		db:     db,
		tables: tables,
		log:    log.With(zap.String("repository", "event")),
	}
}

func (r *eventRepository) CreateWithDateLock(ctx context.Context, event *entity.Event) error {
	eventItem, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}
	lockItem, err := attributevalue.MarshalMap(&entity.DateLock{
		EventDate: event.EventDate,
		EventID:   event.EventID,
	})
	if err != nil {
		return fmt.Errorf("marshal date lock %s: %w", event.EventDate, err)
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tables.DateLocks),
					Item:                lockItem,
					ConditionExpression: aws.String("attribute_not_exists(eventDate)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tables.Events),
					Item:                eventItem,
					ConditionExpression: aws.String("attribute_not_exists(eventId)"),
				},
			},
		},
	})

	if database.IsTransactionCanceled(err) {
		r.log.Warn("Event date already taken",
			zap.String("event_date", event.EventDate),
			zap.String("event_id", event.EventID),
		)
		return utils.ConflictErrorf("date %s already has an active event", event.EventDate)
	}
	if err != nil {
		r.log.Error("Failed to create event",
			zap.Error(err),
			zap.String("event_id", event.EventID),
			zap.String("event_date", event.EventDate),
		)
		return fmt.Errorf("create event %s: %w", event.EventID, err)
	}

	return nil
}

func (r *eventRepository) FindByID(ctx context.Context, eventID string) (*entity.Event, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Events),
		Key: map[string]types.AttributeValue{
			"eventId": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		r.log.Error("Failed to find event by ID",
			zap.Error(err),
			zap.String("event_id", eventID),
		)
		return nil, fmt.Errorf("find event by ID %s: %w", eventID, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var event entity.Event
	if err := attributevalue.UnmarshalMap(out.Item, &event); err != nil {
		return nil, fmt.Errorf("unmarshal event %s: %w", eventID, err)
	}

	return &event, nil
}

func (r *eventRepository) FindDateLock(ctx context.Context, eventDate string) (*entity.DateLock, error) {
	out, err := r.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.DateLocks),
		Key: map[string]types.AttributeValue{
			"eventDate": &types.AttributeValueMemberS{Value: eventDate},
		},
	})
	if err != nil {
		r.log.Error("Failed to find date lock",
			zap.Error(err),
			zap.String("event_date", eventDate),
		)
		return nil, fmt.Errorf("find date lock %s: %w", eventDate, err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var lock entity.DateLock
	if err := attributevalue.UnmarshalMap(out.Item, &lock); err != nil {
		return nil, fmt.Errorf("unmarshal date lock %s: %w", eventDate, err)
	}

	return &lock, nil
}

func (r *eventRepository) FindByDate(ctx context.Context, eventDate string) (*entity.Event, error) {
	lock, err := r.FindDateLock(ctx, eventDate)
	if err != nil {
		return nil, err
	}
	if lock == nil {
		return nil, nil
	}

	return r.FindByID(ctx, lock.EventID)
}

func (r *eventRepository) UpdateInPlace(ctx context.Context, event *entity.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	_, err = r.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tables.Events),
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(eventId)"),
	})

	if database.IsConditionalCheckFailed(err) {
		return utils.NotFoundErrorf("event %s not found", event.EventID)
	}
	if err != nil {
		r.log.Error("Failed to update event",
			zap.Error(err),
			zap.String("event_id", event.EventID),
		)
		return fmt.Errorf("update event %s: %w", event.EventID, err)
	}

	return nil
}

func (r *eventRepository) Deactivate(ctx context.Context, event *entity.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tables.Events),
					Item:                item,
					ConditionExpression: aws.String("attribute_exists(eventId)"),
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tables.DateLocks),
					Key: map[string]types.AttributeValue{
						"eventDate": &types.AttributeValueMemberS{Value: event.EventDate},
					},
					// guards against a concurrent reassignment of the date
					ConditionExpression: aws.String("eventId = :eventId"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":eventId": &types.AttributeValueMemberS{Value: event.EventID},
					},
				},
			},
		},
	})

	if database.IsTransactionCanceled(err) {
		return utils.ConflictErrorf("date lock for %s no longer owned by event %s", event.EventDate, event.EventID)
	}
	if err != nil {
		r.log.Error("Failed to deactivate event",
			zap.Error(err),
			zap.String("event_id", event.EventID),
		)
		return fmt.Errorf("deactivate event %s: %w", event.EventID, err)
	}

	return nil
}

func (r *eventRepository) Reactivate(ctx context.Context, event *entity.Event) error {
	item, err := attributevalue.MarshalMap(event)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", event.EventID, err)
	}
	lockItem, err := attributevalue.MarshalMap(&entity.DateLock{
		EventDate: event.EventDate,
		EventID:   event.EventID,
	})
	if err != nil {
		return fmt.Errorf("marshal date lock %s: %w", event.EventDate, err)
	}

	_, err = r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tables.DateLocks),
					Item:                lockItem,
					ConditionExpression: aws.String("attribute_not_exists(eventDate)"),
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tables.Events),
					Item:                item,
					ConditionExpression: aws.String("attribute_exists(eventId)"),
				},
			},
		},
	})

	if database.IsTransactionCanceled(err) {
		return utils.ConflictErrorf("date %s already has an active event", event.EventDate)
	}
	if err != nil {
		r.log.Error("Failed to reactivate event",
			zap.Error(err),
			zap.String("event_id", event.EventID),
		)
		return fmt.Errorf("reactivate event %s: %w", event.EventID, err)
	}

	return nil
}

func (r *eventRepository) DeleteWithDateLock(ctx context.Context, event *entity.Event) error {
	_, err := r.db.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tables.Events),
					Key: map[string]types.AttributeValue{
						"eventId": &types.AttributeValueMemberS{Value: event.EventID},
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tables.DateLocks),
					Key: map[string]types.AttributeValue{
						"eventDate": &types.AttributeValueMemberS{Value: event.EventDate},
					},
					ConditionExpression: aws.String("eventId = :eventId"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":eventId": &types.AttributeValueMemberS{Value: event.EventID},
					},
				},
			},
		},
	})

	if database.IsTransactionCanceled(err) {
		return utils.ConflictErrorf("date lock for %s no longer owned by event %s", event.EventDate, event.EventID)
	}
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", event.EventID),
		)
		return fmt.Errorf("delete event %s: %w", event.EventID, err)
	}

	r.log.Info("Event deleted", zap.String("event_id", event.EventID))
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, eventID string) error {
	_, err := r.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tables.Events),
		Key: map[string]types.AttributeValue{
			"eventId": &types.AttributeValueMemberS{Value: eventID},
		},
	})
	if err != nil {
		r.log.Error("Failed to delete event",
			zap.Error(err),
			zap.String("event_id", eventID),
		)
		return fmt.Errorf("delete event %s: %w", eventID, err)
	}

	r.log.Info("Event deleted", zap.String("event_id", eventID))
	return nil
}

func (r *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	out, err := r.db.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tables.Events),
	})
	if err != nil {
		r.log.Error("Failed to list events", zap.Error(err))
		return nil, fmt.Errorf("list events: %w", err)
	}

	var events []*entity.Event
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &events); err != nil {
		return nil, fmt.Errorf("unmarshal events: %w", err)
	}

	return events, nil
}
