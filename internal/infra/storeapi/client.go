// Package storeapi はストアバックエンドのREST APIクライアントです。
// 状態は持たず、セッションのトークンは context から毎回転送します。
package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"app/internal/service"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// エラーボディは {"error": "..."} 形式（こちらのAPIと同じ）。
type errorBody struct {
	Error string `json:"error"`
}

// doJSON は1往復分。bodyがnilなら本文なし、outがnilならレスポンスを捨てる。
// 2xx以外は *service.RemoteError にして返す。
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok, ok := service.TokenFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// タイムアウトや接続失敗。メッセージは呼び出し側で汎用文言にする。
		return &service.RemoteError{StatusCode: 0, Message: ""}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.NewDecoder(resp.Body).Decode(&eb)
		return &service.RemoteError{StatusCode: resp.StatusCode, Message: eb.Error}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &service.RemoteError{StatusCode: resp.StatusCode, Message: "invalid response body"}
	}
	return nil
}
