package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/animalcatalog/internal/common"
	sc "github.com/dmitrijs2005/animalcatalog/internal/server/config"
	"github.com/dmitrijs2005/animalcatalog/internal/server/models"
)

const imageUploadExpiry = 15 * time.Minute

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}

	timeNow = time.Now
)

// ImageService hands out presigned S3 PUT URLs for animal pictures.
type ImageService struct {
	config *sc.Config
}

func NewImageService(cfg *sc.Config) *ImageService {
	return &ImageService{config: cfg}
}

// ImageStorageKey returns a fresh object key under animals/YYYY/MM/DD/.
func ImageStorageKey(d time.Time) string {
	return fmt.Sprintf("animals/%04d/%02d/%02d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ImageService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.config.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return newS3PresignClient(client), nil
}

// PresignUpload returns a presigned PUT for a new image object along with
// the URL the image will be readable at. Without a configured bucket it
// fails with common.ErrorUnavailable.
func (s *ImageService) PresignUpload(ctx context.Context, contentType string) (*models.ImageUpload, error) {
	if !s.config.ImageUploadsEnabled() {
		return nil, common.ErrorUnavailable
	}
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("%w: unsupported content type %q", common.ErrorInvalidInput, contentType)
	}

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}

	now := timeNow().UTC()
	bucket := s.config.S3Bucket
	key := ImageStorageKey(now)

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(imageUploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	return &models.ImageUpload{
		Key:       key,
		UploadURL: req.URL,
		ImageURL:  s.publicURL(key),
		ExpiresAt: now.Add(imageUploadExpiry),
	}, nil
}

func (s *ImageService) publicURL(key string) string {
	if s.config.S3PublicBaseURL != "" {
		return strings.TrimRight(s.config.S3PublicBaseURL, "/") + "/" + key
	}
	if s.config.S3BaseEndpoint != "" {
		return strings.TrimRight(s.config.S3BaseEndpoint, "/") + "/" + s.config.S3Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.S3Bucket, s.config.S3Region, key)
}
