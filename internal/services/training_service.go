package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/falai"
	"github.com/saransh-debugs/PixelAlchemy/internal/models"
	"github.com/saransh-debugs/PixelAlchemy/internal/store"
)

// TrainModelInput is a validated training request.
type TrainModelInput struct {
	Name      string
	Type      string
	Age       int
	Ethnicity string
	EyeColor  string
	Bald      bool
	ZipURL    string
}

// TrainingService submits training jobs to the inference gateway and
// records them as pending models.
type TrainingService struct {
	db      *gorm.DB
	store   *store.Store
	gateway falai.Gateway
}

func NewTrainingService(db *gorm.DB, gateway falai.Gateway) *TrainingService {
	return &TrainingService{
		db:      db,
		store:   store.New(db),
		gateway: gateway,
	}
}

// Train creates a pending model record and submits the training job to the
// provider queue. Both happen inside one transaction: if submission fails,
// the record is rolled back so no orphaned row without a request id is left
// behind.
func (s *TrainingService) Train(ctx context.Context, ownerID string, input TrainModelInput) (*models.Model, error) {
	model := &models.Model{
		Name:      input.Name,
		Type:      models.ModelType(input.Type),
		Age:       input.Age,
		Ethnicity: input.Ethnicity,
		EyeColor:  input.EyeColor,
		Bald:      input.Bald,
		ZipURL:    input.ZipURL,
		OwnerID:   ownerID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := s.store.WithTx(tx)

		if err := txStore.CreateModel(ctx, model); err != nil {
			return err
		}

		// The model name doubles as the provider-side trigger word.
		result, err := s.gateway.SubmitTraining(ctx, input.ZipURL, input.Name)
		if err != nil {
			return fmt.Errorf("training submission failed: %w", err)
		}

		model.ProviderRequestID = &result.RequestID
		return txStore.AttachTrainingRequestID(ctx, model.ID, result.RequestID)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("training job submitted",
		zap.String("model_id", model.ID),
		zap.Stringp("request_id", model.ProviderRequestID),
		zap.String("owner_id", ownerID))

	return model, nil
}
