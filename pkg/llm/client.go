// Package llm is the gateway to the completion sidecar: one call surface
// with retry, timeouts and usage accounting. Calls are pure: no database
// access, no hidden state, no shared mutex held across the provider
// call. Conversation memory belongs to the NLU service.
package llm

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/specsmith/specsmith/pkg/config"
	llmv1 "github.com/specsmith/specsmith/proto"
)

// Request is one completion call.
type Request struct {
	Model       string
	System      string
	UserPrompt  string
	MaxTokens   int
	Temperature float32
	// JSONSchema, when set, asks the provider to conform its output.
	JSONSchema string
}

// Usage reports token consumption for one call. The gateway returns usage
// to the caller; it never writes accounting to the store itself.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Completion is a successful gateway response.
type Completion struct {
	Text    string
	Usage   Usage
	Latency time.Duration
}

// Client is the gateway call surface. Agents are unit-tested by
// substituting a deterministic stub.
type Client interface {
	// Complete sends one completion request, applying the configured retry
	// policy for retryable failures.
	Complete(ctx context.Context, req Request) (*Completion, error)

	// Close releases the underlying connection.
	Close() error
}

// GRPCClient implements Client over the gRPC completion sidecar.
type GRPCClient struct {
	conn     *grpc.ClientConn
	client   llmv1.LLMServiceClient
	provider *config.LLMProviderConfig
}

// NewGRPCClient creates a gateway client. grpc.NewClient dials lazily; the
// actual connection happens on the first call.
func NewGRPCClient(addr string, provider *config.LLMProviderConfig) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM service at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:     conn,
		client:   llmv1.NewLLMServiceClient(conn),
		provider: provider,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// Complete sends the request with exponential backoff plus jitter on
// rate-limit and unavailability, bounded by the provider's retry cap and
// per-call timeout. 4xx provider errors are never retried.
func (c *GRPCClient) Complete(ctx context.Context, req Request) (*Completion, error) {
	if req.Model == "" {
		req.Model = c.provider.Model
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = c.provider.MaxTokensDefault
	}

	ctx, cancel := context.WithTimeout(ctx, c.provider.Timeout())
	defer cancel()

	tries := c.provider.Retries()
	base := c.provider.RetryBase()

	var lastErr error
	for attempt := 0; attempt < tries; attempt++ {
		if attempt > 0 {
			if err := sleepBackoff(ctx, base, attempt); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrTimeout, err)
			}
		}

		completion, err := c.call(ctx, req)
		if err == nil {
			return completion, nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %d tries exhausted: %v", ErrUnavailable, tries, lastErr)
}

// call performs a single RPC and maps transport failures onto the gateway
// error taxonomy.
func (c *GRPCClient) call(ctx context.Context, req Request) (*Completion, error) {
	start := time.Now()

	resp, err := c.client.Complete(ctx, &llmv1.CompleteRequest{
		Model:        req.Model,
		SystemPrompt: req.System,
		UserPrompt:   req.UserPrompt,
		MaxTokens:    int32(req.MaxTokens),
		Temperature:  req.Temperature,
		JsonSchema:   req.JSONSchema,
	})
	if err != nil {
		return nil, mapGRPCError(err)
	}

	completion := &Completion{
		Text:    resp.GetText(),
		Latency: time.Since(start),
	}
	if u := resp.GetUsage(); u != nil {
		completion.Usage = Usage{
			InputTokens:  int(u.GetInputTokens()),
			OutputTokens: int(u.GetOutputTokens()),
			TotalTokens:  int(u.GetTotalTokens()),
		}
	}
	return completion, nil
}

// mapGRPCError translates gRPC status codes to the gateway taxonomy.
func mapGRPCError(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch st.Code() {
	case codes.DeadlineExceeded, codes.Canceled:
		return fmt.Errorf("%w: %s", ErrTimeout, st.Message())
	case codes.ResourceExhausted:
		return fmt.Errorf("%w: %s", ErrRateLimited, st.Message())
	case codes.InvalidArgument, codes.FailedPrecondition, codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrProviderError, st.Message())
	default:
		return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
	}
}

// sleepBackoff waits base·2^(attempt-1) plus up to 50% jitter, or returns
// early when the context is done.
func sleepBackoff(ctx context.Context, base time.Duration, attempt int) error {
	backoff := base << (attempt - 1)
	jitter := time.Duration(rand.Int63n(int64(backoff)/2 + 1))
	select {
	case <-time.After(backoff + jitter):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
