package image

import "github.com/saransh-debugs/PixelAlchemy/internal/models"

// BulkImagesResponse returns image rows as stored, including Pending ones;
// callers must check status/image_url themselves.
type BulkImagesResponse struct {
	Images []models.OutputImage `json:"images"`
}
