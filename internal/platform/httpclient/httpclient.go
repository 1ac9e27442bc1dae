package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"riavet-admin/internal/platform/logger"
	"riavet-admin/internal/platform/metrics"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 10 * time.Second

	HeaderRequestID = "X-Request-ID"
)

// Client envuelve *http.Client con helpers comunes para los clients de cada backend.
// Un solo timeout fijo, sin reintentos.
type Client struct {
	HTTP    *http.Client
	BaseURL string // opcional; si se define, DoJSON puede recibir paths relativos

	// Service etiqueta logs y métricas ("patients", "records"...).
	Service string
	Log     logger.Logger
	Metrics *metrics.Collector
}

type Options struct {
	BaseURL   string
	Service   string
	Timeout   time.Duration
	Transport http.RoundTripper
	Log       logger.Logger
	Metrics   *metrics.Collector
}

// New crea un Client con timeout razonable.
func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{
			Timeout: timeout,
		},
		Log: logger.Nop(),
	}
}

// NewWithOptions valida BaseURL y arma el client completo.
func NewWithOptions(opts Options) (*Client, error) {
	c := New(opts.Timeout)
	if opts.Transport != nil {
		c.HTTP.Transport = opts.Transport
	}
	c.Service = strings.TrimSpace(opts.Service)
	if opts.Log != nil {
		c.Log = opts.Log.With(map[string]any{"backend": c.Service})
	}
	c.Metrics = opts.Metrics

	if strings.TrimSpace(opts.BaseURL) == "" {
		return c, nil
	}
	if _, err := url.ParseRequestURI(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	c.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	return c, nil
}

// NewWithBaseURL crea un Client con BaseURL + timeout.
func NewWithBaseURL(baseURL string, timeout time.Duration) (*Client, error) {
	return NewWithOptions(Options{BaseURL: baseURL, Timeout: timeout})
}

// DoJSON hace un request JSON.
// - pathOrURL: URL absoluta o path relativo a BaseURL (puede llevar query)
// - in: body a enviar (opcional). Si nil => no body.
// - out: donde decodificar JSON (opcional). Si nil => ignora body.
// Errores: *NetworkError si no hubo respuesta, *APIError si status no es 2xx.
func (c *Client) DoJSON(
	ctx context.Context,
	method string,
	pathOrURL string,
	headers map[string]string,
	in any,
	out any,
) error {
	if c == nil || c.HTTP == nil {
		return errors.New("httpclient: nil client")
	}

	fullURL, err := c.resolveURL(pathOrURL)
	if err != nil {
		return err
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("httpclient: marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := requestID(ctx)
	req.Header.Set(HeaderRequestID, reqID)

	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	log := c.logger().With(map[string]any{
		"method":     method,
		"url":        fullURL,
		"request_id": reqID,
	})

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.Metrics.ObserveBackendCall(c.Service, method, "network_error", elapsed)
		log.Warn("backend call failed", map[string]any{"error": err.Error(), "duration_ms": elapsed.Milliseconds()})
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	c.Metrics.ObserveBackendCall(c.Service, method, strconv.Itoa(resp.StatusCode), elapsed)
	log.Debug("backend call", map[string]any{"status": resp.StatusCode, "duration_ms": elapsed.Milliseconds()})

	// Leer body (limitado) para errores / decode
	raw, err := readAtMost(resp.Body, 1<<20) // 1MB max
	if err != nil {
		return &NetworkError{Method: method, URL: fullURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b := strings.TrimSpace(string(raw))
		return &APIError{
			Status:  resp.StatusCode,
			Message: messageFromBody(b),
			Body:    b,
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}

	return nil
}

// Get, Post, Put, Patch y Delete son atajos sin headers extra.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.DoJSON(ctx, http.MethodGet, path, nil, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPost, path, nil, in, out)
}

func (c *Client) Put(ctx context.Context, path string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPut, path, nil, in, out)
}

func (c *Client) Patch(ctx context.Context, path string, in, out any) error {
	return c.DoJSON(ctx, http.MethodPatch, path, nil, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.DoJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// WithQuery agrega parámetros no vacíos al path.
func WithQuery(path string, params map[string]string) string {
	q := url.Values{}
	for k, v := range params {
		if strings.TrimSpace(v) == "" {
			continue
		}
		q.Set(k, v)
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}

func (c *Client) logger() logger.Logger {
	if c.Log == nil {
		return logger.Nop()
	}
	return c.Log
}

func (c *Client) resolveURL(pathOrURL string) (string, error) {
	pathOrURL = strings.TrimSpace(pathOrURL)
	if pathOrURL == "" {
		return "", errors.New("httpclient: empty url")
	}

	// Si ya es URL absoluta, úsala tal cual.
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL, nil
	}

	if strings.TrimSpace(c.BaseURL) == "" {
		return "", errors.New("httpclient: relative path requires BaseURL")
	}

	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return c.BaseURL + pathOrURL, nil
}

// requestID reutiliza el id del request entrante (chi) o genera uno nuevo.
func requestID(ctx context.Context) string {
	if id := chimw.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}

func readAtMost(r io.Reader, max int64) ([]byte, error) {
	if max <= 0 {
		max = 1 << 20
	}
	lr := io.LimitReader(r, max)
	return io.ReadAll(lr)
}
