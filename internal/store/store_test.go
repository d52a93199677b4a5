package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.Migrator().DropTable(&models.Model{}, &models.OutputImage{}, &models.Pack{}, &models.PackPrompt{}, &models.UserCredit{})

	err = db.AutoMigrate(&models.Model{}, &models.OutputImage{}, &models.Pack{}, &models.PackPrompt{}, &models.UserCredit{})
	if err != nil {
		panic("failed to migrate database")
	}

	return db
}

func TestListOutputImagesPagination(t *testing.T) {
	db := setupTestDB()
	s := New(db)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		img := models.OutputImage{
			ID:                fmt.Sprintf("img-%d", i),
			Prompt:            fmt.Sprintf("prompt %d", i),
			ModelID:           "model-1",
			ProviderRequestID: fmt.Sprintf("req-%d", i),
			Status:            models.JobStatusPending,
			OwnerID:           "owner-1",
			CreatedAt:         base.Add(time.Duration(i) * time.Minute),
		}
		assert.NoError(t, db.Create(&img).Error)
		ids = append(ids, img.ID)
	}

	// limit=2 offset=1 over 5 matching rows returns exactly rows 2 and 3.
	page, err := s.ListOutputImages(ctx, ids, "owner-1", 2, 1)
	assert.NoError(t, err)
	if assert.Len(t, page, 2) {
		assert.Equal(t, "img-1", page[0].ID)
		assert.Equal(t, "img-2", page[1].ID)
	}

	// Default limit applies when the caller passes zero.
	all, err := s.ListOutputImages(ctx, ids, "owner-1", 0, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 5)

	// Other owners see nothing.
	other, err := s.ListOutputImages(ctx, ids, "owner-2", 10, 0)
	assert.NoError(t, err)
	assert.Empty(t, other)
}

func TestListOutputImagesMembership(t *testing.T) {
	db := setupTestDB()
	s := New(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.NoError(t, db.Create(&models.OutputImage{
			ID:                fmt.Sprintf("img-%d", i),
			Prompt:            "p",
			ModelID:           "model-1",
			ProviderRequestID: fmt.Sprintf("req-%d", i),
			Status:            models.JobStatusPending,
			OwnerID:           "owner-1",
		}).Error)
	}

	page, err := s.ListOutputImages(ctx, []string{"img-0", "img-2"}, "owner-1", 10, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 2)
}

func TestMarkModelGeneratedMatchesByRequestID(t *testing.T) {
	db := setupTestDB()
	s := New(db)
	ctx := context.Background()

	reqID := "req-train-7"
	m := &models.Model{
		Name:              "Dana",
		Type:              models.ModelTypeOther,
		Age:               22,
		Ethnicity:         "Pacific",
		EyeColor:          "Hazel",
		ZipURL:            "https://x/d.zip",
		ProviderRequestID: &reqID,
		TrainingStatus:    models.JobStatusPending,
		OwnerID:           "owner-1",
	}
	assert.NoError(t, s.CreateModel(ctx, m))

	matched, err := s.MarkModelGenerated(ctx, reqID, "tensors/dana.safetensors", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	matched, err = s.MarkModelGenerated(ctx, "unknown-request", "tensors/x.safetensors", nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), matched)
}

func TestAttachTrainingRequestID(t *testing.T) {
	db := setupTestDB()
	s := New(db)
	ctx := context.Background()

	m := &models.Model{
		Name:      "Eve",
		Type:      models.ModelTypeWoman,
		Age:       35,
		Ethnicity: "Black",
		EyeColor:  "Brown",
		ZipURL:    "https://x/e.zip",
		OwnerID:   "owner-1",
	}
	assert.NoError(t, s.CreateModel(ctx, m))
	assert.Equal(t, models.JobStatusPending, m.TrainingStatus)

	assert.NoError(t, s.AttachTrainingRequestID(ctx, m.ID, "req-train-9"))

	stored, err := s.FindModel(ctx, m.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, stored.ProviderRequestID) {
		assert.Equal(t, "req-train-9", *stored.ProviderRequestID)
	}

	assert.ErrorIs(t, s.AttachTrainingRequestID(ctx, "no-such-model", "req-x"), gorm.ErrRecordNotFound)
}

func TestDebitCredit(t *testing.T) {
	db := setupTestDB()
	s := New(db)
	ctx := context.Background()

	assert.ErrorIs(t, s.DebitCredit(ctx, "owner-1"), ErrInsufficientCredits)

	assert.NoError(t, db.Create(&models.UserCredit{OwnerID: "owner-1", Amount: 2}).Error)
	assert.NoError(t, s.DebitCredit(ctx, "owner-1"))
	assert.NoError(t, s.DebitCredit(ctx, "owner-1"))
	assert.ErrorIs(t, s.DebitCredit(ctx, "owner-1"), ErrInsufficientCredits)
}
