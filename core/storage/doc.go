// Package storage archives fetched remote payloads to object storage.
//
// It wraps the MinIO Go client behind a small Client interface (mocked in
// core/storage/mocks) and supports both AWS S3 and self-hosted MinIO.
//
// # Archive
//
// Archive implements reconcile.Archiver. Each successful fetch is written to
// <prefix>/<UTC timestamp>.json with content type application/json. The
// engine treats archive failures as warnings.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	archive := storage.NewArchive(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
//	err = archive.EnsureBucket(ctx, cfg.Storage.Region)
package storage
