// Package store is the persistence layer for job records: trained models,
// output images, prompt packs and credit balances.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/models"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
)

const DefaultListLimit = 10

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// WithTx returns a Store bound to the given transaction handle.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return &Store{DB: tx}
}

// CreateModel persists a new model record in the Pending state,
// assigning its id when unset.
func (s *Store) CreateModel(ctx context.Context, m *models.Model) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.TrainingStatus == "" {
		m.TrainingStatus = models.JobStatusPending
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create model failed: %w", err)
	}
	return nil
}

// AttachTrainingRequestID stores the provider-assigned request id on a model.
func (s *Store) AttachTrainingRequestID(ctx context.Context, modelID, requestID string) error {
	result := s.DB.WithContext(ctx).Model(&models.Model{}).
		Where("id = ?", modelID).
		Update("provider_request_id", requestID)
	if result.Error != nil {
		return fmt.Errorf("attach training request id failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *Store) FindModel(ctx context.Context, id string) (*models.Model, error) {
	var m models.Model
	if err := s.DB.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateOutputImage persists a single pending generation record.
func (s *Store) CreateOutputImage(ctx context.Context, img *models.OutputImage) error {
	if img.ID == "" {
		img.ID = uuid.NewString()
	}
	if img.Status == "" {
		img.Status = models.JobStatusPending
	}
	if err := s.DB.WithContext(ctx).Create(img).Error; err != nil {
		return fmt.Errorf("create output image failed: %w", err)
	}
	return nil
}

// BulkCreateOutputImages persists pending generation records in one batch.
// Ids are assigned up front so the returned slice order maps positionally
// onto the caller's prompt order.
func (s *Store) BulkCreateOutputImages(ctx context.Context, imgs []*models.OutputImage) error {
	if len(imgs) == 0 {
		return nil
	}
	for _, img := range imgs {
		if img.ID == "" {
			img.ID = uuid.NewString()
		}
		if img.Status == "" {
			img.Status = models.JobStatusPending
		}
	}
	if err := s.DB.WithContext(ctx).Create(&imgs).Error; err != nil {
		return fmt.Errorf("bulk create output images failed: %w", err)
	}
	return nil
}

// ListOutputImages returns the owner's images among ids, ordered by creation
// time, with skip/take pagination. Pending rows are included; callers must
// check status themselves.
func (s *Store) ListOutputImages(ctx context.Context, ids []string, ownerID string, limit, offset int) ([]models.OutputImage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var images []models.OutputImage
	err := s.DB.WithContext(ctx).
		Where("id IN ? AND owner_id = ?", ids, ownerID).
		Order("created_at asc").
		Offset(offset).
		Limit(limit).
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("list output images failed: %w", err)
	}
	return images, nil
}

// MarkModelGenerated transitions the model matching requestID to Generated
// and records its tensor path. The update is set-to-value, so duplicate
// webhook deliveries are a no-op in effect. Returns the number of matched
// rows; zero is not an error since late or duplicate webhooks are expected.
func (s *Store) MarkModelGenerated(ctx context.Context, requestID, tensorPath string, payload []byte) (int64, error) {
	updates := map[string]interface{}{
		"training_status": models.JobStatusGenerated,
		"tensor_path":     tensorPath,
	}
	if len(payload) > 0 {
		updates["provider_payload"] = datatypes.JSON(payload)
	}
	result := s.DB.WithContext(ctx).Model(&models.Model{}).
		Where("provider_request_id = ?", requestID).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("mark model generated failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// MarkImageGenerated transitions the image matching requestID to Generated
// and records its result URL. Same idempotency contract as MarkModelGenerated.
func (s *Store) MarkImageGenerated(ctx context.Context, requestID, imageURL string, payload []byte) (int64, error) {
	updates := map[string]interface{}{
		"status":    models.JobStatusGenerated,
		"image_url": imageURL,
	}
	if len(payload) > 0 {
		updates["provider_payload"] = datatypes.JSON(payload)
	}
	result := s.DB.WithContext(ctx).Model(&models.OutputImage{}).
		Where("provider_request_id = ?", requestID).
		Updates(updates)
	if result.Error != nil {
		return 0, fmt.Errorf("mark image generated failed: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (s *Store) FindPack(ctx context.Context, id string) (*models.Pack, error) {
	var p models.Pack
	if err := s.DB.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListPackPrompts returns a pack's prompts in their defined order.
func (s *Store) ListPackPrompts(ctx context.Context, packID string) ([]models.PackPrompt, error) {
	var prompts []models.PackPrompt
	err := s.DB.WithContext(ctx).
		Where("pack_id = ?", packID).
		Order("position asc").
		Find(&prompts).Error
	if err != nil {
		return nil, fmt.Errorf("list pack prompts failed: %w", err)
	}
	return prompts, nil
}

func (s *Store) ListPacks(ctx context.Context) ([]models.Pack, error) {
	var packs []models.Pack
	err := s.DB.WithContext(ctx).
		Preload("Prompts", func(db *gorm.DB) *gorm.DB {
			return db.Order("pack_prompts.position asc")
		}).
		Order("created_at asc").
		Find(&packs).Error
	if err != nil {
		return nil, fmt.Errorf("list packs failed: %w", err)
	}
	return packs, nil
}

// DebitCredit atomically deducts one credit from the owner's balance.
// The guard in the WHERE clause keeps the balance from going negative
// under concurrent requests.
func (s *Store) DebitCredit(ctx context.Context, ownerID string) error {
	result := s.DB.WithContext(ctx).Model(&models.UserCredit{}).
		Where("owner_id = ? AND amount > 0", ownerID).
		Update("amount", gorm.Expr("amount - ?", 1))
	if result.Error != nil {
		return fmt.Errorf("debit credit failed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsufficientCredits
	}
	return nil
}
