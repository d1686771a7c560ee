// Package port 定义工作流层依赖的外部能力
package port

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// ChatModelFactory 按 provider 名获取 ChatModel，空名称使用默认 provider
type ChatModelFactory interface {
	Get(ctx context.Context, provider string) (model.BaseChatModel, error)
}

// ChatModelFactoryFunc 函数形式的 ChatModelFactory
type ChatModelFactoryFunc func(ctx context.Context, provider string) (model.BaseChatModel, error)

func (f ChatModelFactoryFunc) Get(ctx context.Context, provider string) (model.BaseChatModel, error) {
	return f(ctx, provider)
}

// StaticModel 始终返回同一个 ChatModel
func StaticModel(m model.BaseChatModel) ChatModelFactory {
	return ChatModelFactoryFunc(func(context.Context, string) (model.BaseChatModel, error) {
		return m, nil
	})
}
