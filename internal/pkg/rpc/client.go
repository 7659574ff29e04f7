package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// Caller issues asynchronous calls. *Client implements it.
type Caller interface {
	Call(ctx context.Context, msg Message) *Future
}

// Client posts messages to http://<address>/api/<kind>. It never retries and
// sets no timeout of its own: only the caller's context cancels a call.
type Client struct {
	resolver Resolver
	http     *http.Client
	logger   *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(client *Client) {
		client.logger = l
	}
}

func NewClient(resolver Resolver, opts ...Option) *Client {
	c := &Client{
		resolver: resolver,
		http:     &http.Client{Timeout: 0},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "rpc-client")
	return c
}

// Call sends msg without blocking and returns its future.
func (c *Client) Call(ctx context.Context, msg Message) *Future {
	f := NewFuture()
	go func() {
		body, err := c.do(ctx, msg)
		if err != nil {
			c.logger.DebugContext(ctx, "call failed", "kind", msg.Kind(), "error", err)
		}
		f.Resolve(body, err)
	}()
	return f
}

// Send is Call followed by Then. Exactly one continuation runs.
func (c *Client) Send(ctx context.Context, msg Message, onSuccess func(json.RawMessage), onFailure func(error)) {
	c.Call(ctx, msg).Then(onSuccess, onFailure)
}

func (c *Client) do(ctx context.Context, msg Message) (json.RawMessage, error) {
	kind := msg.Kind()

	addr, err := c.resolver.Resolve(kind)
	if err != nil {
		return nil, &Error{Kind: kind, Message: err.Error(), Err: err}
	}

	payload, err := Encode(msg)
	if err != nil {
		return nil, &Error{Kind: kind, Message: "encode request: " + err.Error(), Err: err}
	}

	url := fmt.Sprintf("http://%s/api/%s", addr, kind)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &Error{Kind: kind, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{Kind: kind, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: kind, Status: resp.StatusCode, Message: "read reply: " + err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reply := DecodeOr(body, ErrorBody{})
		if reply.Message == "" {
			reply.Message = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Kind: kind, Status: resp.StatusCode, Code: reply.Code, Message: reply.Message}
	}

	return body, nil
}

// Invoke calls msg, waits and decodes the reply into a T.
func Invoke[T any](ctx context.Context, caller Caller, msg Message) (T, error) {
	var out T

	raw, err := caller.Call(ctx, msg).Await(ctx)
	if err != nil {
		return out, err
	}
	if err = Decode(raw, &out); err != nil {
		return out, &Error{Kind: msg.Kind(), Message: "malformed reply: " + err.Error(), Err: err}
	}
	return out, nil
}
