package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"blog-idea-api/internal/domain/entity"
)

// DefaultShareKeyPrefix 分享快照键前缀
const DefaultShareKeyPrefix = "share_"

// ShareStore 基于 Redis 的分享快照存储，过期交给 Redis TTL
type ShareStore struct {
	client    *Client
	keyPrefix string
	group     singleflight.Group
}

// NewShareStore 创建分享快照存储
func NewShareStore(client *Client, keyPrefix string) *ShareStore {
	if keyPrefix == "" {
		keyPrefix = DefaultShareKeyPrefix
	}
	return &ShareStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Key 构建快照存储键
func (s *ShareStore) Key(id string) string {
	return s.keyPrefix + id
}

// SaveIfAbsent 以 SET NX EX 写入快照，key 已存在时返回 false
func (s *ShareStore) SaveIfAbsent(ctx context.Context, id string, snapshot *entity.ShareSnapshot, ttl time.Duration) (bool, error) {
	key := s.Key(id)
	ctx, span := tracer.Start(ctx, "share.SaveIfAbsent",
		trace.WithAttributes(
			attribute.String("share.key", key),
			attribute.Int64("share.ttl_ms", ttl.Milliseconds()),
		))
	defer span.End()

	if snapshot == nil {
		return false, fmt.Errorf("snapshot is nil")
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	ok, err := s.client.rdb.SetNX(ctx, key, bytes, ttl).Result()
	if err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("failed to write %s: %w", key, err)
	}

	span.SetAttributes(attribute.Bool("share.written", ok))
	return ok, nil
}

// Load 读取快照，不存在或已过期时返回 (nil, nil)
// 同一 key 的并发读取通过 singleflight 合并
func (s *ShareStore) Load(ctx context.Context, id string) (*entity.ShareSnapshot, error) {
	key := s.Key(id)
	ctx, span := tracer.Start(ctx, "share.Load",
		trace.WithAttributes(attribute.String("share.key", key)))
	defer span.End()

	result, err, shared := s.group.Do(key, func() (interface{}, error) {
		val, err := s.client.rdb.Get(ctx, key).Bytes()
		if err != nil {
			if IsNil(err) {
				return []byte(nil), nil
			}
			return nil, fmt.Errorf("failed to read %s: %w", key, err)
		}
		return val, nil
	})
	span.SetAttributes(attribute.Bool("share.shared", shared))

	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	raw, _ := result.([]byte)
	if raw == nil {
		span.SetAttributes(attribute.Bool("share.hit", false))
		return nil, nil
	}
	span.SetAttributes(attribute.Bool("share.hit", true))

	var snapshot entity.ShareSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to unmarshal snapshot %s: %w", key, err)
	}
	return &snapshot, nil
}
