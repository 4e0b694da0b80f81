package usecase

import (
	"context"
	"time"

	"github.com/alekscortez/ff-reservations-sub000/internal/data/entity"
	"github.com/alekscortez/ff-reservations-sub000/internal/data/repository"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/request"
	"github.com/alekscortez/ff-reservations-sub000/internal/dto/response"
	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"go.uber.org/zap"
)

type EventService interface {
	CreateEvent(ctx context.Context, actor string, req *request.CreateEventRequest) (*response.EventResponse, error)
	UpdateEvent(ctx context.Context, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error)
	DeleteEvent(ctx context.Context, eventID string) error
	GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error)
	GetEventByDate(ctx context.Context, eventDate string) (*response.EventResponse, error)
	ListEvents(ctx context.Context) ([]*response.EventResponse, error)
}

type eventService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewEventService(repo *repository.Repository, log *zap.Logger) EventService {
	return &eventService{
		repo: repo,
		log:  log.With(zap.String("service", "event")),
	}
}

func (s *eventService) CreateEvent(ctx context.Context, actor string, req *request.CreateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create event validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationErrorf("%s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	event := &entity.Event{
		EventID:         utils.GenerateUUIDString(),
		EventName:       req.EventName,
		EventDate:       req.EventDate,
		Status:          entity.EventStatusActive,
		MinDeposit:      req.MinDeposit,
		TablePricing:    req.TablePricing,
		SectionPricing:  req.SectionPricing,
		DisabledTables:  req.DisabledTables,
		DisabledClients: req.DisabledClients,
		CreatedAt:       now,
		CreatedBy:       actor,
		UpdatedAt:       now,
	}

	// event + date-lock as one atomic pair; loser of a date race sees Conflict
	if err := s.repo.Event.CreateWithDateLock(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event created",
		zap.String("event_id", event.EventID),
		zap.String("event_date", event.EventDate),
		zap.String("created_by", actor),
	)

	return buildEventResponse(event), nil
}

func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req *request.UpdateEventRequest) (*response.EventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update event validation failed", zap.Any("errors", errs))
		return nil, utils.ValidationErrorf("%s", utils.FormatValidationErrors(errs))
	}

	current, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, utils.NotFoundErrorf("event %s not found", eventID)
	}

	updated := *current
	applyEventPatch(&updated, req)
	updated.UpdatedAt = time.Now()

	// moving an ACTIVE event's date would diverge from its date-lock;
	// deactivate first, then move, then reactivate
	if current.IsActive() && updated.EventDate != current.EventDate {
		return nil, utils.ValidationErrorf("cannot change date of an active event")
	}

	switch {
	case current.IsActive() && !updated.IsActive():
		if err := s.repo.Event.Deactivate(ctx, &updated); err != nil {
			return nil, err
		}

	case !current.IsActive() && updated.IsActive():
		if err := s.repo.Event.Reactivate(ctx, &updated); err != nil {
			return nil, err
		}

	default:
		if err := s.repo.Event.UpdateInPlace(ctx, &updated); err != nil {
			return nil, err
		}
	}

	s.log.Info("Event updated",
		zap.String("event_id", eventID),
		zap.String("status", string(updated.Status)),
	)

	return buildEventResponse(&updated), nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID string) error {
	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return utils.NotFoundErrorf("event %s not found", eventID)
	}

	if event.IsActive() {
		return s.repo.Event.DeleteWithDateLock(ctx, event)
	}
	return s.repo.Event.Delete(ctx, eventID)
}

func (s *eventService) GetEvent(ctx context.Context, eventID string) (*response.EventResponse, error) {
	event, err := s.repo.Event.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, utils.NotFoundErrorf("event %s not found", eventID)
	}

	return buildEventResponse(event), nil
}

func (s *eventService) GetEventByDate(ctx context.Context, eventDate string) (*response.EventResponse, error) {
	if _, err := time.Parse("2006-01-02", eventDate); err != nil {
		return nil, utils.ValidationErrorf("invalid date %s", eventDate)
	}

	event, err := s.repo.Event.FindByDate(ctx, eventDate)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, utils.NotFoundErrorf("no event for date %s", eventDate)
	}

	return buildEventResponse(event), nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*response.EventResponse, error) {
	events, err := s.repo.Event.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*response.EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, buildEventResponse(e))
	}
	return out, nil
}

func applyEventPatch(event *entity.Event, req *request.UpdateEventRequest) {
	if req.EventName != nil {
		event.EventName = *req.EventName
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.Status != nil {
		event.Status = entity.EventStatus(*req.Status)
	}
	if req.MinDeposit != nil {
		event.MinDeposit = *req.MinDeposit
	}
	if req.TablePricing != nil {
		event.TablePricing = req.TablePricing
	}
	if req.SectionPricing != nil {
		event.SectionPricing = req.SectionPricing
	}
	if req.DisabledTables != nil {
		event.DisabledTables = req.DisabledTables
	}
	if req.DisabledClients != nil {
		event.DisabledClients = req.DisabledClients
	}
}

func buildEventResponse(event *entity.Event) *response.EventResponse {
	return &response.EventResponse{
		EventID:         event.EventID,
		EventName:       event.EventName,
		EventDate:       event.EventDate,
		Status:          string(event.Status),
		MinDeposit:      event.MinDeposit,
		TablePricing:    event.TablePricing,
		SectionPricing:  event.SectionPricing,
		DisabledTables:  event.DisabledTables,
		DisabledClients: event.DisabledClients,
		CreatedAt:       event.CreatedAt,
		UpdatedAt:       event.UpdatedAt,
	}
}
