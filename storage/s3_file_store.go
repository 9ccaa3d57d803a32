package storage

import (
	"io"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3FileStore uploads objects to a single bucket with public-read visibility.
// Path-style addressing is always used so that S3-compatible endpoints work.
type S3FileStore struct {
	bucket   string
	uploader *s3manager.Uploader
}

// NewS3FileStoreFromEnv builds the store from S3_ENDPOINT, S3_REGION and
// S3_BUCKET. Credentials resolve through the default AWS chain.
func NewS3FileStoreFromEnv() (*S3FileStore, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(os.Getenv("S3_REGION")),
		Endpoint:         aws.String(os.Getenv("S3_ENDPOINT")),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	return &S3FileStore{
		bucket:   os.Getenv("S3_BUCKET"),
		uploader: s3manager.NewUploader(sess),
	}, nil
}

func (s *S3FileStore) Store(key string, contentType string, body io.Reader) (string, error) {
	result, err := s.uploader.Upload(&s3manager.UploadInput{
		ACL:         aws.String("public-read"),
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	return result.Location, nil
}
