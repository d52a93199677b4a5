package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/aliyun/alibaba-cloud-sdk-go/services/sts"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"github.com/saransh-debugs/PixelAlchemy/config"
)

// uploadURLExpiry is how long a signed training-archive upload URL stays valid.
const uploadURLExpiry = 5 * time.Minute

// UploadURL is a time-limited direct-upload target for a training archive.
type UploadURL struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// StorageService issues pre-signed PUT URLs against the configured OSS bucket
// so clients upload training archives directly, bypassing this backend.
type StorageService struct {
	cfg *config.Config
}

func NewStorageService(cfg *config.Config) *StorageService {
	return &StorageService{cfg: cfg}
}

// SignUploadURL returns a pre-signed PUT URL for a fresh archive key.
// When a RAM role is configured, temporary STS credentials are assumed
// first and the URL is signed with them.
func (s *StorageService) SignUploadURL() (*UploadURL, error) {
	client, err := s.newClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}

	bucket, err := client.Bucket(s.cfg.OSSBucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}

	key := fmt.Sprintf("models/%d_%s.zip", time.Now().Unix(), uuid.NewString())

	signedURL, err := bucket.SignURL(key, oss.HTTPPut, int64(uploadURLExpiry.Seconds()),
		oss.ContentType("application/zip"))
	if err != nil {
		return nil, fmt.Errorf("failed to sign upload url: %w", err)
	}

	return &UploadURL{URL: signedURL, Key: key}, nil
}

func (s *StorageService) newClient() (*oss.Client, error) {
	if s.cfg.OSSRoleArn == "" {
		return oss.New(s.cfg.OSSEndpoint, s.cfg.OSSAccessKeyID, s.cfg.OSSAccessKeySecret)
	}

	creds, err := s.assumeRole()
	if err != nil {
		return nil, err
	}
	return oss.New(s.cfg.OSSEndpoint, creds.AccessKeyId, creds.AccessKeySecret,
		oss.SecurityToken(creds.SecurityToken))
}

func (s *StorageService) assumeRole() (*sts.Credentials, error) {
	// STS wants the region id without the "oss-" prefix.
	region := strings.TrimPrefix(s.cfg.OSSRegion, "oss-")

	client, err := sts.NewClientWithAccessKey(region, s.cfg.OSSAccessKeyID, s.cfg.OSSAccessKeySecret)
	if err != nil {
		return nil, err
	}

	request := sts.CreateAssumeRoleRequest()
	request.Scheme = "https"
	request.RoleArn = s.cfg.OSSRoleArn
	request.RoleSessionName = "pixelalchemy-upload"
	request.DurationSeconds = "900"

	response, err := client.AssumeRole(request)
	if err != nil {
		return nil, fmt.Errorf("assume role failed: %w", err)
	}

	return &response.Credentials, nil
}
