package generate_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/saransh-debugs/PixelAlchemy/internal/api/v1/generate"
	"github.com/saransh-debugs/PixelAlchemy/internal/falai"
	"github.com/saransh-debugs/PixelAlchemy/internal/middleware"
	"github.com/saransh-debugs/PixelAlchemy/internal/models"
	"github.com/saransh-debugs/PixelAlchemy/internal/services"
)

type stubGateway struct{}

func (g *stubGateway) SubmitTraining(ctx context.Context, zipURL, triggerWord string) (*falai.SubmitResult, error) {
	return &falai.SubmitResult{RequestID: "req-train-1"}, nil
}

func (g *stubGateway) SubmitGeneration(ctx context.Context, prompt, tensorPath string) (*falai.SubmitResult, error) {
	return &falai.SubmitResult{RequestID: "req-gen-1"}, nil
}

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.Migrator().DropTable(&models.Model{}, &models.OutputImage{}, &models.UserCredit{})
	if err := db.AutoMigrate(&models.Model{}, &models.OutputImage{}, &models.UserCredit{}); err != nil {
		panic("failed to migrate database")
	}
	return db
}

func newTestRouter(db *gorm.DB, creditGating bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Identity("", "QWERTY"))
	svc := services.NewGenerationService(db, &stubGateway{}, creditGating)
	generate.RegisterRoutes(r.Group("/"), generate.NewHandler(svc))
	return r
}

func postJSON(r *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func strPtr(s string) *string { return &s }

func seedModel(db *gorm.DB, id string, trained bool) {
	m := &models.Model{
		ID:             id,
		Name:           "Alice",
		Type:           models.ModelTypeWoman,
		Age:            30,
		Ethnicity:      "White",
		EyeColor:       "Blue",
		ZipURL:         "https://x/a.zip",
		TrainingStatus: models.JobStatusPending,
		OwnerID:        "QWERTY",
	}
	if trained {
		m.TrainingStatus = models.JobStatusGenerated
		m.TensorPath = strPtr("tensors/alice.safetensors")
		m.ProviderRequestID = strPtr("req-train-" + id)
	}
	if err := db.Create(m).Error; err != nil {
		panic(err)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	db := setupTestDB()
	r := newTestRouter(db, false)
	seedModel(db, "model-1", true)

	w := postJSON(r, "/ai/generate", `{"prompt":"portrait of alice","modelId":"model-1","num":1}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp generate.GenerateImageResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ImageID)

	var stored models.OutputImage
	assert.NoError(t, db.First(&stored, "id = ?", resp.ImageID).Error)
	assert.Equal(t, models.JobStatusPending, stored.Status)
	assert.Empty(t, stored.ImageURL)
}

func TestGenerateEndpointUntrainedModel(t *testing.T) {
	db := setupTestDB()
	r := newTestRouter(db, false)
	seedModel(db, "model-pending", false)

	w := postJSON(r, "/ai/generate", `{"prompt":"portrait","modelId":"model-pending","num":1}`)
	assert.Equal(t, http.StatusLengthRequired, w.Code)

	var count int64
	db.Model(&models.OutputImage{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestGenerateEndpointValidation(t *testing.T) {
	db := setupTestDB()
	r := newTestRouter(db, false)

	tests := []struct {
		name string
		body string
	}{
		{"missing prompt", `{"modelId":"m","num":1}`},
		{"missing model id", `{"prompt":"p","num":1}`},
		{"zero num", `{"prompt":"p","modelId":"m","num":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/ai/generate", tt.body)
			assert.Equal(t, http.StatusLengthRequired, w.Code)
		})
	}
}

func TestGenerateEndpointCreditGating(t *testing.T) {
	db := setupTestDB()
	r := newTestRouter(db, true)
	seedModel(db, "model-1", true)

	w := postJSON(r, "/ai/generate", `{"prompt":"portrait","modelId":"model-1","num":1}`)
	assert.Equal(t, http.StatusLengthRequired, w.Code)

	assert.NoError(t, db.Create(&models.UserCredit{OwnerID: "QWERTY", Amount: 1}).Error)

	w = postJSON(r, "/ai/generate", `{"prompt":"portrait","modelId":"model-1","num":1}`)
	assert.Equal(t, http.StatusOK, w.Code)
}
