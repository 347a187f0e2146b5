package rpc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"fastos/internal/config"
)

// HTTPConfig 定义HTTP客户端配置
type HTTPConfig struct {
	Address string        // fastos server listen address
	Timeout time.Duration // request timeout
}

// DefaultHTTPConfig 返回默认HTTP客户端配置
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Address: config.Config.Server.Address,
		Timeout: 5 * time.Second,
	}
}

// HTTPResponse 定义HTTP响应结构
type HTTPResponse struct {
	StatusCode int    `json:"status_code"`
	Body       []byte `json:"body"`
	Text       string `json:"text"`
}

// HTTPClient is the thin client CLI commands use to reach a running fastos
// server before falling back to a local in-process system.
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

func NewHTTPClient(cfg *HTTPConfig) *HTTPClient {
	if cfg == nil {
		cfg = DefaultHTTPConfig()
	}
	return &HTTPClient{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: "http://" + cfg.Address,
	}
}

func (c *HTTPClient) Get(path string, params map[string]string) (*HTTPResponse, error) {
	u, err := c.buildURL(path, params)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Get(u)
	if err != nil {
		return nil, err
	}
	return readResponse(resp)
}

func (c *HTTPClient) Post(path string, data interface{}) (*HTTPResponse, error) {
	u, err := c.buildURL(path, nil)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if data != nil {
		jsonData, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize data: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	resp, err := c.client.Post(u, "application/json", body)
	if err != nil {
		return nil, err
	}
	return readResponse(resp)
}

func (c *HTTPClient) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// buildURL 构建完整的URL
func (c *HTTPClient) buildURL(path string, params map[string]string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path = path

	if params != nil {
		q := u.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func readResponse(resp *http.Response) (*HTTPResponse, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &HTTPResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Text:       string(body),
	}, nil
}
