package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	sc "github.com/okozlov/accountd/internal/server/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

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
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

const (
	// Default avatars are numbered avatar-1.svg .. avatar-10.svg.
	defaultAvatarMin = 1
	defaultAvatarMax = 10

	presignExpiry = 15 * time.Minute
)

// AvatarService assigns default profile images and issues presigned URLs for
// custom avatar uploads against an S3-compatible backend.
type AvatarService struct {
	config *sc.Config
	// randIndex picks a uniform integer in [min, max]. Injectable so tests
	// can pin the chosen default avatar.
	randIndex func(min, max int) int
}

// NewAvatarService constructs an AvatarService. A nil randIndex falls back to
// math/rand.
func NewAvatarService(cfg *sc.Config, randIndex func(min, max int) int) *AvatarService {
	if randIndex == nil {
		randIndex = func(min, max int) int {
			return rand.Intn(max-min+1) + min
		}
	}
	return &AvatarService{config: cfg, randIndex: randIndex}
}

// DefaultAvatarURL returns the asset URL of a randomly chosen stock avatar.
func (s *AvatarService) DefaultAvatarURL() string {
	index := s.randIndex(defaultAvatarMin, defaultAvatarMax)
	return fmt.Sprintf("%s/avatar-%d.svg", strings.TrimRight(s.config.StaticAssetBase, "/"), index)
}

// RandomStorageKey builds a date-partitioned object key for an uploaded avatar.
func RandomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("avatars/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AvatarService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,     // MINIO_ROOT_USER
			s.config.S3RootPassword, // MINIO_ROOT_PASSWORD
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// GetPresignedPutURL returns a fresh object key and a presigned PUT URL the
// client can upload a custom avatar to.
func (s *AvatarService) GetPresignedPutURL(ctx context.Context) (string, string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", "", err
	}

	bucket := s.config.S3Bucket
	key := RandomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))

	if err != nil {
		return "", "", err
	}

	return key, req.URL, nil
}

// GetPresignedGetURL returns a presigned GET URL for a previously uploaded
// avatar object.
func (s *AvatarService) GetPresignedGetURL(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
