// Package opentdb fetches question batches from the Open Trivia DB HTTP API.
package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"trivia-palooza/internal/domain"
)

const (
	DefaultBaseURL = "https://opentdb.com/api.php"
	DefaultTimeout = 10 * time.Second
)

// Open Trivia DB response codes.
const (
	codeSuccess   = 0
	codeNoResults = 1
)

type response struct {
	ResponseCode int               `json:"response_code"`
	Results      []domain.Question `json:"results"`
}

// Client is a quiz.QuestionSource backed by Open Trivia DB.
// Identical requests in flight at the same time share one round trip; nothing
// is kept once it completes.
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
	log     *zap.Logger
	sf      singleflight.Group
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		http: &fasthttp.Client{
			Name:         "trivia-palooza",
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		baseURL: baseURL,
		timeout: timeout,
		log:     logger,
	}
}

// Endpoint is the request URL for a topic's batch.
func (c *Client) Endpoint(topic domain.Topic) string {
	args := fasthttp.AcquireArgs()
	defer fasthttp.ReleaseArgs(args)
	args.SetUint("amount", topic.Amount)
	args.SetUint("category", topic.Category)
	if topic.Difficulty != "" {
		args.Set("difficulty", topic.Difficulty)
	}
	args.Set("type", "multiple")
	return c.baseURL + "?" + string(args.QueryString())
}

// FetchQuestions performs a single GET for the topic. There are no retries.
func (c *Client) FetchQuestions(ctx context.Context, topic domain.Topic) ([]domain.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}

	url := c.Endpoint(topic)
	ch := c.sf.DoChan(url, func() (interface{}, error) {
		return c.fetch(topic, url, timeout)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			c.log.Debug("shared in-flight request", zap.String("topic", topic.ID))
		}
		return append([]domain.Question(nil), res.Val.([]domain.Question)...), nil
	}
}

func (c *Client) fetch(topic domain.Topic, url string, timeout time.Duration) ([]domain.Question, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	started := time.Now()
	if err := c.http.DoTimeout(req, resp, timeout); err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	c.log.Debug("opentdb response",
		zap.String("topic", topic.ID),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("elapsed", time.Since(started)))

	if status := resp.StatusCode(); status != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: http %d", domain.ErrSourceStatus, status)
	}

	var payload response
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	switch payload.ResponseCode {
	case codeSuccess:
	case codeNoResults:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: response_code %d", domain.ErrSourceStatus, payload.ResponseCode)
	}

	for i, q := range payload.Results {
		if q.Prompt == "" || q.CorrectAnswer == "" || len(q.IncorrectAnswers) == 0 {
			return nil, fmt.Errorf("%w: result %d is incomplete", domain.ErrMalformedPayload, i)
		}
	}
	return payload.Results, nil
}
