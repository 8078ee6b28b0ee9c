package storage_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"status-notifier/core/models"
	"status-notifier/core/reconcile"
	"status-notifier/core/storage"
	"status-notifier/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fetchedAt = time.Date(2026, 3, 1, 12, 30, 5, 0, time.FixedZone("CET", 3600))

func TestArchive_ObjectName(t *testing.T) {
	snap := &reconcile.Snapshot{FetchedAt: fetchedAt}

	assert.Equal(t, "snapshots/20260301T113005.000Z.json", storage.NewArchive(nil, "b", "/snapshots/").ObjectName(snap))
	assert.Equal(t, "20260301T113005.000Z.json", storage.NewArchive(nil, "b", "").ObjectName(snap))
}

func TestArchive_UploadsRawPayload(t *testing.T) {
	raw := []byte(`[{"key":"NA1","status":"OK"}]`)
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", "snapshots/20260301T113005.000Z.json", mock.Anything, int64(len(raw)),
		mock.MatchedBy(func(opts minio.PutObjectOptions) bool { return opts.ContentType == "application/json" })).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			assert.Equal(t, raw, body)
		}).
		Return(minio.UploadInfo{}, nil)

	archive := storage.NewArchive(client, "bucket", "snapshots")
	err := archive.Archive(context.Background(), &reconcile.Snapshot{Raw: raw, FetchedAt: fetchedAt})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestArchive_EncodesInstancesWithoutRaw(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			assert.JSONEq(t, `[{"key":"NA1","location":"","environment":"","releaseVersion":"","status":"OK"}]`, string(body))
		}).
		Return(minio.UploadInfo{}, nil)

	snap := &reconcile.Snapshot{
		Instances: []models.Instance{{Key: "NA1", Status: "OK"}},
		FetchedAt: fetchedAt,
	}
	require.NoError(t, storage.NewArchive(client, "bucket", "snapshots").Archive(context.Background(), snap))
	client.AssertExpectations(t)
}

func TestArchive_UploadFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	err := storage.NewArchive(client, "bucket", "snapshots").Archive(context.Background(), &reconcile.Snapshot{Raw: []byte("[]"), FetchedAt: fetchedAt})
	assert.ErrorContains(t, err, "access denied")
}

func TestArchive_EnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(true, nil)

		require.NoError(t, storage.NewArchive(client, "bucket", "").EnsureBucket(context.Background(), ""))
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "bucket", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		require.NoError(t, storage.NewArchive(client, "bucket", "").EnsureBucket(context.Background(), "eu-west-1"))
		client.AssertExpectations(t)
	})

	t.Run("Check Fails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "bucket").Return(false, errors.New("unreachable"))

		err := storage.NewArchive(client, "bucket", "").EnsureBucket(context.Background(), "")
		assert.ErrorContains(t, err, "unreachable")
	})
}
