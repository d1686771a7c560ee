// Package repository 定义数据访问层接口
package repository

import (
	"context"
	"time"

	"blog-idea-api/internal/domain/entity"
)

// ShareRepository 分享快照存储
type ShareRepository interface {
	// SaveIfAbsent 仅当 key 不存在时写入快照，返回是否写入成功
	SaveIfAbsent(ctx context.Context, id string, snapshot *entity.ShareSnapshot, ttl time.Duration) (bool, error)
	// Load 读取快照，不存在或已过期时返回 (nil, nil)
	Load(ctx context.Context, id string) (*entity.ShareSnapshot, error)
}
