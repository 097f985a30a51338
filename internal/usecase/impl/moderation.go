package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/delivery/context"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	domainerrors "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/repository"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/session"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/errors"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// ModerationRecorder writes decisions to the audit trail and publishes them.
// Neither failure is surfaced to the operator.
type ModerationRecorder struct {
	auditRepo repository.AuditRepository
	publisher service.EventPublisher
	observer  service.DecisionObserver
	logger    *slog.Logger
	now       func() time.Time
}

type ModerationRecorderParams struct {
	fx.In

	AuditRepo repository.AuditRepository
	Publisher service.EventPublisher
	Observer  service.DecisionObserver `optional:"true"`
	Logger    *slog.Logger
}

func NewModerationRecorder(params ModerationRecorderParams) *ModerationRecorder {
	return &ModerationRecorder{
		auditRepo: params.AuditRepo,
		publisher: params.Publisher,
		observer:  params.Observer,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (r *ModerationRecorder) observe(subject entity.ModerationSubject, action entity.ModerationAction, err error) {
	if r.observer != nil {
		r.observer.ObserveDecision(string(subject), string(action), err)
	}
}

// record is called only after the backend accepted the decision.
func (r *ModerationRecorder) record(
	ctx context.Context,
	subject entity.ModerationSubject,
	entityID string,
	action entity.ModerationAction,
	reason string,
	message string,
) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	rec := &entity.ModerationRecord{
		ID:        id,
		Subject:   subject,
		EntityID:  entityID,
		Action:    action,
		Reason:    reason,
		Message:   message,
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		CreatedAt: r.now().UTC(),
	}
	if sess, ok := session.FromContext(ctx); ok {
		rec.AdminID = sess.AdminID
		rec.AdminEmail = sess.Email
	}

	if r.auditRepo != nil {
		if err := r.auditRepo.Record(ctx, rec); err != nil {
			logger.Error("Failed to record moderation decision",
				slog.String("subject", string(subject)),
				slog.String("entity_id", entityID),
				slog.String("action", string(action)),
				slog.Any("error", err),
			)
		}
	}

	if r.publisher != nil {
		event := &service.ModerationEvent{
			RequestID:  rec.RequestID,
			EventID:    rec.ID.String(),
			Subject:    string(subject),
			EntityID:   entityID,
			Action:     string(action),
			Reason:     reason,
			AdminID:    rec.AdminID,
			OccurredAt: rec.CreatedAt,
		}
		if err := r.publisher.PublishModerationEvent(ctx, event); err != nil {
			logger.Error("Failed to publish moderation event",
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
	}

	logger.Info("Moderation decision applied",
		slog.String("subject", string(subject)),
		slog.String("entity_id", entityID),
		slog.String("action", string(action)),
	)
}

// mutateAndRecord runs a confirmed destructive or status call and records it on success.
func (r *ModerationRecorder) mutateAndRecord(
	ctx context.Context,
	subject entity.ModerationSubject,
	entityID string,
	action entity.ModerationAction,
	reason string,
	call func(ctx context.Context) (string, error),
) (string, error) {
	message, err := call(ctx)
	r.observe(subject, action, err)
	if err != nil {
		return "", err
	}

	r.record(ctx, subject, entityID, action, reason, message)

	return message, nil
}

// approvalDesk implements approve/reject against a pending queue.
type approvalDesk[T entity.Identifiable] struct {
	subject     entity.ModerationSubject
	listPending func(ctx context.Context) ([]T, error)
	inflight    *singleflight.Group
	recorder    *ModerationRecorder
}

func newApprovalDesk[T entity.Identifiable](
	subject entity.ModerationSubject,
	listPending func(ctx context.Context) ([]T, error),
	recorder *ModerationRecorder,
) *approvalDesk[T] {
	return &approvalDesk[T]{
		subject:     subject,
		listPending: listPending,
		inflight:    &singleflight.Group{},
		recorder:    recorder,
	}
}

func (d *approvalDesk[T]) queue(ctx context.Context) (*entity.PendingQueue[T], error) {
	items, err := d.listPending(ctx)
	if err != nil {
		return nil, err
	}

	return entity.NewPendingQueue(items), nil
}

// decide checks id is pending, performs the one backend call, and returns the queue without id.
// Identical concurrent decisions (same action, id and reason) share a single backend call.
func (d *approvalDesk[T]) decide(
	ctx context.Context,
	id string,
	action entity.ModerationAction,
	reason string,
	call func(ctx context.Context) (string, error),
) (*usecase.Decision[T], error) {
	queue, err := d.queue(ctx)
	if err != nil {
		return nil, err
	}

	if !queue.Contains(id) {
		return nil, domainerrors.ErrPendingItemNotFound.WithDetails(string(d.subject) + " " + id)
	}

	// The shared call must outlive any single caller; each caller stops waiting on its own ctx.
	shared := context.WithoutCancel(ctx)
	key := string(d.subject) + ":" + string(action) + ":" + id + ":" + reason
	resultCh := d.inflight.DoChan(key, func() (any, error) {
		return d.recorder.mutateAndRecord(shared, d.subject, id, action, reason, call)
	})

	var result singleflight.Result
	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case result = <-resultCh:
	}
	if result.Err != nil {
		return nil, result.Err
	}

	message, _ := result.Val.(string)
	queue.Remove(id)

	return &usecase.Decision[T]{Message: message, Queue: queue}, nil
}
