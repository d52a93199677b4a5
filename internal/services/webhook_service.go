package services

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/store"
)

// dedupeTTL bounds how long processed webhook request ids are remembered.
const dedupeTTL = 24 * time.Hour

// TrainingWebhookEvent is the provider's training-completion callback payload.
type TrainingWebhookEvent struct {
	RequestID  string
	TensorPath string
	Raw        []byte
}

// ImageWebhookEvent is the provider's generation-completion callback payload.
type ImageWebhookEvent struct {
	RequestID string
	ImageURL  string
	Raw       []byte
}

// WebhookService correlates out-of-band provider callbacks with the local
// records they complete. Each job's state machine is Pending -> Generated;
// Generated is terminal. Webhooks for distinct request ids are independent
// and may be processed concurrently.
//
// Handlers always acknowledge receipt regardless of outcome, so these
// methods never surface an error to the provider: failures and unmatched
// request ids are logged only.
type WebhookService struct {
	store *store.Store
	rdb   *redis.Client
}

// NewWebhookService builds the correlator. rdb may be nil; duplicate
// delivery detection is then skipped (the updates are idempotent either way).
func NewWebhookService(db *gorm.DB, rdb *redis.Client) *WebhookService {
	return &WebhookService{
		store: store.New(db),
		rdb:   rdb,
	}
}

// HandleTrainingWebhook marks the matching model as trained.
func (s *WebhookService) HandleTrainingWebhook(ctx context.Context, event TrainingWebhookEvent) {
	log := zap.L().With(zap.String("request_id", event.RequestID))

	if event.RequestID == "" {
		log.Warn("training webhook without request_id")
		return
	}
	s.noteDelivery(ctx, "webhook:train:"+event.RequestID, log)

	matched, err := s.store.MarkModelGenerated(ctx, event.RequestID, event.TensorPath, event.Raw)
	if err != nil {
		log.Error("training webhook update failed", zap.Error(err))
		return
	}
	if matched == 0 {
		log.Warn("training webhook matched no model")
		return
	}

	log.Info("model training completed", zap.String("tensor_path", event.TensorPath))
}

// HandleImageWebhook marks the matching output image as generated.
func (s *WebhookService) HandleImageWebhook(ctx context.Context, event ImageWebhookEvent) {
	log := zap.L().With(zap.String("request_id", event.RequestID))

	if event.RequestID == "" {
		log.Warn("image webhook without request_id")
		return
	}
	s.noteDelivery(ctx, "webhook:image:"+event.RequestID, log)

	matched, err := s.store.MarkImageGenerated(ctx, event.RequestID, event.ImageURL, event.Raw)
	if err != nil {
		log.Error("image webhook update failed", zap.Error(err))
		return
	}
	if matched == 0 {
		log.Warn("image webhook matched no image")
		return
	}

	log.Info("image generation completed", zap.String("image_url", event.ImageURL))
}

// noteDelivery records the request id in redis and logs redeliveries. The
// marker is observational: the store updates are set-to-value, so replays
// cannot corrupt state even without it.
func (s *WebhookService) noteDelivery(ctx context.Context, key string, log *zap.Logger) {
	if s.rdb == nil {
		return
	}
	first, err := s.rdb.SetNX(ctx, key, 1, dedupeTTL).Result()
	if err != nil {
		log.Warn("webhook dedupe marker failed", zap.Error(err))
		return
	}
	if !first {
		log.Info("duplicate webhook delivery")
	}
}
