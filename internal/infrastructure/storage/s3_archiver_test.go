//go:build unit
// +build unit

package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/config"
	"github.com/eprofos/eprofos-2-sub017/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockS3API struct {
	mock.Mock
}

func (m *mockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if out := args.Get(0); out != nil {
		return out.(*s3.PutObjectOutput), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestS3Archiver_Archive(t *testing.T) {
	client := &mockS3API{}
	client.On("PutObject", mock.Anything, mock.MatchedBy(func(in *s3.PutObjectInput) bool {
		body, err := io.ReadAll(in.Body)
		return err == nil &&
			aws.ToString(in.Bucket) == "eprofos-exports" &&
			aws.ToString(in.Key) == "engagement/report.csv" &&
			aws.ToString(in.ContentType) == "text/csv" &&
			string(body) == "a;b"
	})).Return(&s3.PutObjectOutput{}, nil)

	archiver := NewS3Archiver(client, config.ExportStorageSettings{Bucket: "eprofos-exports", Prefix: "/engagement/"}, testutil.SetupTestLogger(t))
	location, err := archiver.Archive(context.Background(), "report.csv", []byte("a;b"), "text/csv")

	require.NoError(t, err)
	assert.Equal(t, "s3://eprofos-exports/engagement/report.csv", location)
	client.AssertExpectations(t)
}

func TestS3Archiver_ArchiveError(t *testing.T) {
	client := &mockS3API{}
	client.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	archiver := NewS3Archiver(client, config.ExportStorageSettings{Bucket: "eprofos-exports"}, testutil.SetupTestLogger(t))
	_, err := archiver.Archive(context.Background(), "report.pdf", []byte("%PDF"), "application/pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
