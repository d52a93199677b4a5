package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/falai"
	"github.com/saransh-debugs/PixelAlchemy/internal/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	// Drop tables if exist to ensure clean state and schema update
	db.Migrator().DropTable(&models.Model{}, &models.OutputImage{}, &models.Pack{}, &models.PackPrompt{}, &models.UserCredit{})

	err = db.AutoMigrate(&models.Model{}, &models.OutputImage{}, &models.Pack{}, &models.PackPrompt{}, &models.UserCredit{})
	if err != nil {
		panic("failed to migrate database")
	}

	return db
}

// fakeGateway records submissions and hands out sequential request ids.
type fakeGateway struct {
	trainCalls []string // zip urls
	genPrompts []string
	failNext   bool
	seq        int
}

var errFakeGateway = errors.New("provider rejected the job")

func (g *fakeGateway) nextID() string {
	g.seq++
	return fmt.Sprintf("req-%d", g.seq)
}

func (g *fakeGateway) SubmitTraining(ctx context.Context, zipURL, triggerWord string) (*falai.SubmitResult, error) {
	if g.failNext {
		return nil, errFakeGateway
	}
	g.trainCalls = append(g.trainCalls, zipURL)
	return &falai.SubmitResult{RequestID: g.nextID()}, nil
}

func (g *fakeGateway) SubmitGeneration(ctx context.Context, prompt, tensorPath string) (*falai.SubmitResult, error) {
	if g.failNext {
		return nil, errFakeGateway
	}
	g.genPrompts = append(g.genPrompts, prompt)
	return &falai.SubmitResult{RequestID: g.nextID()}, nil
}

func strPtr(s string) *string {
	return &s
}

func seedTrainedModel(db *gorm.DB, id, owner string) *models.Model {
	m := &models.Model{
		ID:                id,
		Name:              "Alice",
		Type:              models.ModelTypeWoman,
		Age:               30,
		Ethnicity:         "White",
		EyeColor:          "Blue",
		ZipURL:            "https://x/archive.zip",
		ProviderRequestID: strPtr("train-" + id),
		TrainingStatus:    models.JobStatusGenerated,
		TensorPath:        strPtr("tensors/" + id + ".safetensors"),
		OwnerID:           owner,
	}
	if err := db.Create(m).Error; err != nil {
		panic(err)
	}
	return m
}
