package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"status-notifier/core/reconcile"

	"github.com/minio/minio-go/v7"
)

// snapshotLayout sorts lexically in time order and avoids ':' in object keys.
const snapshotLayout = "20060102T150405.000Z"

// Archive writes fetched remote payloads to a bucket.
type Archive struct {
	client Client
	bucket string
	prefix string
}

// NewArchive creates an archive that writes below prefix in bucket.
func NewArchive(client Client, bucket, prefix string) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
	}
}

// EnsureBucket creates the bucket when it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context, region string) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", a.bucket, err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	return nil
}

// ObjectName returns the key a snapshot is stored under.
func (a *Archive) ObjectName(snap *reconcile.Snapshot) string {
	name := snap.FetchedAt.UTC().Format(snapshotLayout) + ".json"
	if a.prefix == "" {
		return name
	}
	return path.Join(a.prefix, name)
}

// Archive stores the raw payload of snap. Snapshots without a raw payload
// are stored as the JSON encoding of their instances.
func (a *Archive) Archive(ctx context.Context, snap *reconcile.Snapshot) error {
	body := snap.Raw
	if len(body) == 0 {
		encoded, err := json.Marshal(snap.Instances)
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %w", err)
		}
		body = encoded
	}

	name := a.ObjectName(snap)
	_, err := a.client.PutObject(ctx, a.bucket, name, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", name, err)
	}
	return nil
}
