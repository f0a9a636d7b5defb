package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/config"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	b, _ := io.ReadAll(params.Body)
	f.body = string(b)
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3BlobStore_Put(t *testing.T) {
	putter := &fakePutter{}
	store := NewS3BlobStore(putter, config.StorageConfig{Bucket: "assets", Region: "ap-south-1"}, zap.NewNop())

	url, err := store.Put(context.Background(), "banks/1/logo.png", "image/png", strings.NewReader("png"))
	require.NoError(t, err)

	assert.Equal(t, "https://assets.s3.ap-south-1.amazonaws.com/banks/1/logo.png", url)
	assert.Equal(t, "assets", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(putter.input.ContentType))
	assert.Equal(t, "png", putter.body)
}

func TestS3BlobStore_PublicBaseURL(t *testing.T) {
	store := NewS3BlobStore(&fakePutter{}, config.StorageConfig{Bucket: "assets", PublicBaseURL: "https://cdn.example.com/"}, zap.NewNop())

	url, err := store.Put(context.Background(), "cards/2/a.jpg", "image/jpeg", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cards/2/a.jpg", url)
}

func TestS3BlobStore_PutError(t *testing.T) {
	store := NewS3BlobStore(&fakePutter{err: errors.New("denied")}, config.StorageConfig{Bucket: "assets"}, zap.NewNop())

	_, err := store.Put(context.Background(), "k", "image/png", strings.NewReader("x"))
	assert.Error(t, err)
}
