package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"docflow/internal/config"
	"docflow/internal/domain"
	"docflow/internal/port"
)

type s3Client struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
}

// NewS3Client creates the S3-backed ObjectStorage implementation. Writes go
// to the configured results bucket; reads name their bucket explicitly since
// inference output may land in a different one.
func NewS3Client(awsCfg aws.Config, cfg *config.Config) port.ObjectStorage {
	var s3Opts []func(*s3.Options)
	if cfg.AWS.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &s3Client{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Storage.Bucket,
	}
}

func (c *s3Client) SaveText(ctx context.Context, key, contents string) (domain.Location, error) {
	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(contents),
		ContentType: aws.String("text/plain"),
	})
	if err != nil {
		return domain.Location{}, fmt.Errorf("s3 upload: %w", err)
	}
	return domain.Location{
		Bucket: c.bucket,
		Key:    key,
		Prefix: path.Dir(key) + "/",
	}, nil
}

func (c *s3Client) Read(ctx context.Context, bucket, key string) ([]byte, error) {
	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("s3 download: %w", err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("s3 download read: %w", err)
	}
	return data, nil
}

func (c *s3Client) FilesForPrefix(ctx context.Context, bucket, prefix string, keep func(key string) bool) ([][]byte, error) {
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})

	var files [][]byte
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list: %w", err)
		}
		for _, object := range page.Contents {
			if object.Key == nil {
				continue
			}
			if keep != nil && !keep(*object.Key) {
				continue
			}
			data, err := c.Read(ctx, bucket, *object.Key)
			if err != nil {
				return nil, err
			}
			files = append(files, data)
		}
	}
	return files, nil
}
