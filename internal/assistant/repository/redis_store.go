package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexter-app/nexter-backend/internal/assistant/domain"
)

const (
	uploadKeyPrefix   = "assistant:upload:"   // Upload JSON: assistant:upload:{upload_id}
	analysisKeyPrefix = "assistant:analysis:" // Analysis JSON keyed by upload: assistant:analysis:{upload_id}
)

// RedisStore persists uploads and analyses in Redis with a TTL, so
// expiry needs no sweeper. An analysis shares its upload's lifetime.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) SaveUpload(ctx context.Context, upload *domain.Upload) error {
	data, err := json.Marshal(upload)
	if err != nil {
		return fmt.Errorf("marshal upload: %w", err)
	}

	if err := s.client.Set(ctx, s.uploadKey(upload.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	return nil
}

func (s *RedisStore) GetUpload(ctx context.Context, id string) (*domain.Upload, error) {
	data, err := s.client.Get(ctx, s.uploadKey(id)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrUploadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get upload: %w", err)
	}

	var upload domain.Upload
	if err := json.Unmarshal(data, &upload); err != nil {
		return nil, fmt.Errorf("unmarshal upload: %w", err)
	}
	return &upload, nil
}

func (s *RedisStore) SaveAnalysis(ctx context.Context, analysis *domain.Analysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	// Refresh the upload's TTL alongside the analysis so the pair
	// expires together.
	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.analysisKey(analysis.UploadID), data, s.ttl)
	pipe.Expire(ctx, s.uploadKey(analysis.UploadID), s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save analysis: %w", err)
	}
	return nil
}

func (s *RedisStore) GetAnalysisByUpload(ctx context.Context, uploadID string) (*domain.Analysis, error) {
	data, err := s.client.Get(ctx, s.analysisKey(uploadID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrAnalysisNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}

	var analysis domain.Analysis
	if err := json.Unmarshal(data, &analysis); err != nil {
		return nil, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return &analysis, nil
}

func (s *RedisStore) uploadKey(id string) string {
	return uploadKeyPrefix + id
}

func (s *RedisStore) analysisKey(uploadID string) string {
	return analysisKeyPrefix + uploadID
}
