package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/Miorish-Tech-Team/admin-pannel-sub001/config"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/entity"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/domain/service"
	mockRepo "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/repository"
	mockSvc "github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/mocks/service"
	"github.com/Miorish-Tech-Team/admin-pannel-sub001/internal/validation"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Upload:   &config.UploadConfig{MaxImageBytes: 1024},
		Approval: &config.ApprovalConfig{SellerReasonMinLength: 10},
		Banners:  &config.BannerConfig{Limits: config.DefaultBannerLimits()},
		Audit:    &config.AuditConfig{ListLimit: 50},
	}
}

func pngUpload() *entity.ImageUpload {
	return &entity.ImageUpload{Filename: "photo.png", ContentType: "image/png", Data: []byte("\x89PNG\r\n\x1a\n")}
}

// recorderFixtures holds the audit trail collaborators shared by every moderated service.
type recorderFixtures struct {
	recorder  *ModerationRecorder
	auditRepo *mockRepo.MockAuditRepository
	publisher *mockSvc.MockEventPublisher
	observer  *mockSvc.MockDecisionObserver
}

func createTestRecorder(t *testing.T) recorderFixtures {
	auditRepo := mockRepo.NewMockAuditRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	observer := mockSvc.NewMockDecisionObserver(t)

	recorder := NewModerationRecorder(ModerationRecorderParams{
		AuditRepo: auditRepo,
		Publisher: publisher,
		Observer:  observer,
		Logger:    newDiscardLogger(),
	})

	return recorderFixtures{
		recorder:  recorder,
		auditRepo: auditRepo,
		publisher: publisher,
		observer:  observer,
	}
}

// expectRecorded expects one successful decision to be observed, stored and published.
func (fx recorderFixtures) expectRecorded(subject entity.ModerationSubject, action entity.ModerationAction, entityID, reason string) {
	fx.observer.EXPECT().ObserveDecision(string(subject), string(action), nil).Return().Once()

	fx.auditRepo.EXPECT().
		Record(mock.Anything, mock.MatchedBy(func(rec *entity.ModerationRecord) bool {
			return rec.Subject == subject && rec.Action == action && rec.EntityID == entityID && rec.Reason == reason
		})).
		Return(nil).
		Once()

	fx.publisher.EXPECT().
		PublishModerationEvent(mock.Anything, mock.MatchedBy(func(event *service.ModerationEvent) bool {
			return event.Subject == string(subject) && event.Action == string(action) && event.EntityID == entityID
		})).
		Return(nil).
		Once()
}

// expectFailed expects a decision the backend refused: observed, never recorded.
func (fx recorderFixtures) expectFailed(subject entity.ModerationSubject, action entity.ModerationAction) {
	fx.observer.EXPECT().ObserveDecision(string(subject), string(action), mock.Anything).Return().Once()
}

var testValidator = validation.New()
