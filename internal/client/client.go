// Package client 提供博客创意服务的 HTTP 客户端
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"blog-idea-api/internal/domain/entity"
	"blog-idea-api/internal/interfaces/http/dto"
)

const defaultTimeout = 90 * time.Second

// APIError 服务端返回的 {"error": "..."} 错误
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

// Client 博客创意服务客户端
type Client struct {
	baseURL string
	http    *http.Client
}

// New 创建客户端，httpClient 为空时使用默认超时
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// BaseURL 服务地址
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ideas 按主题生成创意
func (c *Client) Ideas(ctx context.Context, topic string) ([]string, error) {
	var resp dto.IdeasResponse
	if err := c.post(ctx, "/generate", dto.GenerateRequest{Type: string(entity.ContentModeIdeas), Topic: topic}, &resp); err != nil {
		return nil, err
	}
	return resp.Ideas, nil
}

// Outline 按创意生成大纲
func (c *Client) Outline(ctx context.Context, idea string) ([]string, error) {
	var resp dto.OutlineResponse
	if err := c.post(ctx, "/generate", dto.GenerateRequest{Type: string(entity.ContentModeOutline), Idea: idea}, &resp); err != nil {
		return nil, err
	}
	return resp.Outline, nil
}

// Share 保存快照并返回分享 ID
func (c *Client) Share(ctx context.Context, snapshot *entity.ShareSnapshot) (string, error) {
	if snapshot == nil {
		snapshot = &entity.ShareSnapshot{}
	}
	req := dto.ShareRequest{
		Topic:        snapshot.Topic,
		Ideas:        snapshot.Ideas,
		SelectedIdea: snapshot.SelectedIdea,
		Outline:      snapshot.Outline,
	}
	var resp dto.ShareResponse
	if err := c.post(ctx, "/generate-share", req, &resp); err != nil {
		return "", err
	}
	return resp.ShareID, nil
}

// Shared 读取分享快照
func (c *Client) Shared(ctx context.Context, id string) (*entity.ShareSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/shared/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var snapshot entity.ShareSnapshot
	if err := c.do(req, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// ShareURL 分享页面地址
func (c *Client) ShareURL(id string) string {
	return c.baseURL + "/share-" + id
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{Status: resp.StatusCode}
		var env dto.ErrorResponse
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Message = env.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
