// Package eino 通过 Eino 全局回调为 LLM 调用上报指标与追踪
package eino

import (
	"sync"

	einocallbacks "github.com/cloudwego/eino/callbacks"
	cbtemplate "github.com/cloudwego/eino/utils/callbacks"
)

var initOnce sync.Once

// Init 注册全局回调，重复调用只生效一次
func Init() {
	initOnce.Do(func() {
		einocallbacks.AppendGlobalHandlers(newGlobalHandler())
	})
}

// newGlobalHandler 只关心 ChatModel 组件，其余组件的回调直接透传
func newGlobalHandler() einocallbacks.Handler {
	return cbtemplate.NewHandlerHelper().
		ChatModel(newChatModelCallbackHandler()).
		Handler()
}
