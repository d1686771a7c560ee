// Package share 提供分享链接的创建与读取
package share

import (
	"context"
	"strings"
	"time"

	"blog-idea-api/internal/config"
	"blog-idea-api/internal/domain/entity"
	"blog-idea-api/internal/domain/repository"
	apperrors "blog-idea-api/pkg/errors"
	"blog-idea-api/pkg/logger"
	"blog-idea-api/pkg/metrics"
)

const (
	defaultTTL      = 7 * 24 * time.Hour
	defaultIDLength = 13
)

// Service 分享服务
type Service struct {
	repo        repository.ShareRepository
	ttl         time.Duration
	idLength    int
	maxAttempts int

	newID func(length int) (string, error)
}

// NewService 创建分享服务
func NewService(repo repository.ShareRepository, cfg *config.Config) *Service {
	s := &Service{
		repo:        repo,
		ttl:         cfg.Share.TTL,
		idLength:    cfg.Share.IDLength,
		maxAttempts: cfg.Share.MaxIDAttempts,
		newID:       NewID,
	}
	if s.ttl <= 0 {
		s.ttl = defaultTTL
	}
	if s.idLength <= 0 {
		s.idLength = defaultIDLength
	}
	if s.maxAttempts <= 0 {
		s.maxAttempts = 1
	}
	return s
}

// Create 保存快照并返回分享 ID
// 快照内容不做一致性校验；ID 冲突时重新生成，超过次数后失败
func (s *Service) Create(ctx context.Context, snapshot *entity.ShareSnapshot) (string, error) {
	if snapshot == nil {
		snapshot = &entity.ShareSnapshot{}
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		id, err := s.newID(s.idLength)
		if err != nil {
			metrics.ShareCreatedTotal.WithLabelValues("error").Inc()
			logger.Error(ctx, "failed to generate share id", err)
			return "", apperrors.ErrShareFailed.WithError(err)
		}

		written, err := s.repo.SaveIfAbsent(ctx, id, snapshot, s.ttl)
		if err != nil {
			metrics.ShareCreatedTotal.WithLabelValues("error").Inc()
			logger.Error(ctx, "failed to save share snapshot", err, "share_id", id)
			return "", apperrors.ErrShareFailed.WithError(apperrors.Wrap(err, apperrors.CodeCacheError, "share store write failed"))
		}
		if written {
			metrics.ShareCreatedTotal.WithLabelValues("success").Inc()
			logger.Info(logger.WithContext(ctx, logger.ShareIDKey, id), "share snapshot created",
				"attempt", attempt,
				"has_selection", snapshot.HasSelection(),
			)
			return id, nil
		}

		metrics.ShareIDCollisions.Inc()
		logger.Warn(ctx, "share id collision", "share_id", id, "attempt", attempt)
	}

	metrics.ShareCreatedTotal.WithLabelValues("exhausted").Inc()
	err := apperrors.New(apperrors.CodeShareIDExhausted, "share id attempts exhausted")
	logger.Error(ctx, "failed to allocate share id", err, "attempts", s.maxAttempts)
	return "", apperrors.ErrShareFailed.WithError(err)
}

// Get 按 ID 读取快照，不存在或已过期返回 ErrShareNotFound
func (s *Service) Get(ctx context.Context, id string) (*entity.ShareSnapshot, error) {
	id = strings.TrimSpace(id)
	ctx = logger.WithContext(ctx, logger.ShareIDKey, id)
	if id == "" {
		metrics.ShareRetrievedTotal.WithLabelValues("miss").Inc()
		return nil, apperrors.ErrShareNotFound
	}

	snapshot, err := s.repo.Load(ctx, id)
	if err != nil {
		metrics.ShareRetrievedTotal.WithLabelValues("error").Inc()
		logger.Error(ctx, "failed to load share snapshot", err)
		return nil, apperrors.ErrShareReadFailed.WithError(apperrors.Wrap(err, apperrors.CodeCacheError, "share store read failed"))
	}
	if snapshot == nil {
		metrics.ShareRetrievedTotal.WithLabelValues("miss").Inc()
		logger.Debug(ctx, "share snapshot not found")
		return nil, apperrors.ErrShareNotFound
	}

	metrics.ShareRetrievedTotal.WithLabelValues("hit").Inc()
	return snapshot, nil
}
