// Package web 内嵌浏览器端页面
package web

import _ "embed"

// IndexHTML 单页应用外壳，编辑页与分享只读页共用
//
//go:embed index.html
var IndexHTML []byte
