package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Service stores room images in an S3 bucket.
type S3Service struct {
	BucketName string
	Client     *s3.Client
}

// NewS3Service initializes the S3 service. Credentials come from the default
// AWS provider chain.
func NewS3Service(bucketName, region string) (*S3Service, error) {
	if bucketName == "" {
		return nil, fmt.Errorf("bucket name is not configured")
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &S3Service{
		BucketName: bucketName,
		Client:     s3.NewFromConfig(cfg),
	}, nil
}

// UploadFile uploads a multipart file to the bucket and returns its public
// URL. It takes ownership of the file and closes it. Object keys are random
// so concurrent uploads of the same filename cannot collide.
func (s *S3Service) UploadFile(file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	defer file.Close()

	buffer := bytes.NewBuffer(nil)
	if _, err := buffer.ReadFrom(file); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := uuid.NewString() + filepath.Ext(fileHeader.Filename)

	_, err := s.Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buffer.Bytes()),
		ContentType: aws.String(fileHeader.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.BucketName, key), nil
}
