package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/falai"
	"github.com/saransh-debugs/PixelAlchemy/internal/models"
	"github.com/saransh-debugs/PixelAlchemy/internal/store"
)

// GenerationService submits image generation jobs against trained models
// and records them as pending output images.
type GenerationService struct {
	db      *gorm.DB
	store   *store.Store
	gateway falai.Gateway

	// CreditGating, when true, requires and debits one credit per generated
	// image on the single-image endpoint.
	CreditGating bool
}

func NewGenerationService(db *gorm.DB, gateway falai.Gateway, creditGating bool) *GenerationService {
	return &GenerationService{
		db:           db,
		store:        store.New(db),
		gateway:      gateway,
		CreditGating: creditGating,
	}
}

// Generate submits one generation job for prompt against the given model.
// The model must exist and have a trained tensor. Record creation, the
// optional credit debit and the request-id attach share one transaction.
func (s *GenerationService) Generate(ctx context.Context, ownerID, prompt, modelID string) (*models.OutputImage, error) {
	model, err := s.store.FindModel(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotReady
		}
		return nil, err
	}
	if !model.Trained() {
		return nil, ErrModelNotReady
	}

	image := &models.OutputImage{
		Prompt:  prompt,
		ModelID: model.ID,
		OwnerID: ownerID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := s.store.WithTx(tx)

		if s.CreditGating {
			if err := txStore.DebitCredit(ctx, ownerID); err != nil {
				return err
			}
		}

		result, err := s.gateway.SubmitGeneration(ctx, prompt, *model.TensorPath)
		if err != nil {
			return fmt.Errorf("generation submission failed: %w", err)
		}

		image.ProviderRequestID = result.RequestID
		return txStore.CreateOutputImage(ctx, image)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("generation job submitted",
		zap.String("image_id", image.ID),
		zap.String("model_id", model.ID),
		zap.String("request_id", image.ProviderRequestID))

	return image, nil
}

// GenerateFromPack submits one generation job per prompt in the pack and
// bulk-creates the records. The returned slice order matches the pack's
// prompt order, so callers can map each prompt to its record positionally.
// If any submission fails, nothing is persisted.
func (s *GenerationService) GenerateFromPack(ctx context.Context, ownerID, modelID, packID string) ([]*models.OutputImage, error) {
	if _, err := s.store.FindPack(ctx, packID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPackNotFound
		}
		return nil, err
	}

	prompts, err := s.store.ListPackPrompts(ctx, packID)
	if err != nil {
		return nil, err
	}

	model, err := s.store.FindModel(ctx, modelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotReady
		}
		return nil, err
	}
	if !model.Trained() {
		return nil, ErrModelNotReady
	}

	images := make([]*models.OutputImage, 0, len(prompts))
	for _, p := range prompts {
		result, err := s.gateway.SubmitGeneration(ctx, p.Prompt, *model.TensorPath)
		if err != nil {
			return nil, fmt.Errorf("generation submission failed for pack prompt %q: %w", p.Prompt, err)
		}
		images = append(images, &models.OutputImage{
			Prompt:            p.Prompt,
			ModelID:           model.ID,
			OwnerID:           ownerID,
			ProviderRequestID: result.RequestID,
		})
	}

	if err := s.store.BulkCreateOutputImages(ctx, images); err != nil {
		return nil, err
	}

	zap.L().Info("pack generation submitted",
		zap.String("pack_id", packID),
		zap.String("model_id", model.ID),
		zap.Int("jobs", len(images)))

	return images, nil
}

// ListOutputImages pages through the owner's images by id membership.
func (s *GenerationService) ListOutputImages(ctx context.Context, ids []string, ownerID string, limit, offset int) ([]models.OutputImage, error) {
	return s.store.ListOutputImages(ctx, ids, ownerID, limit, offset)
}

// ListPacks returns all prompt packs with their prompts.
func (s *GenerationService) ListPacks(ctx context.Context) ([]models.Pack, error) {
	return s.store.ListPacks(ctx)
}
