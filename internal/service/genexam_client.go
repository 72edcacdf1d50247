package service

import (
	"context"
	"errors"
	"exam_backend/internal/config"
	"exam_backend/internal/util"
	"exam_backend/pkg/tracing"
	"fmt"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
)

// GenExamClient calls the third-party exam-authoring API. Keys are per language.
type GenExamClient struct {
	cfg    config.GenExamConfig
	client *resty.Client
}

func NewGenExamClient(cfg config.GenExamConfig) *GenExamClient {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	return &GenExamClient{cfg: cfg, client: client}
}

// Generate posts req and returns the raw response body. sandbox selects the
// sandbox endpoint instead of the language's production one.
func (c *GenExamClient) Generate(ctx context.Context, lang string, sandbox bool, req GenerationRequest) (body []byte, err error) {
	ep, ok := c.cfg.Endpoint(lang)
	if !ok {
		return nil, util.NewInternalError(fmt.Errorf("no exam generation endpoint configured for language %q", lang))
	}
	url := ep.BaseURL
	if sandbox {
		url = c.cfg.SandboxURL
	}
	if url == "" {
		return nil, util.NewInternalError(errors.New("exam generation endpoint URL is empty"))
	}

	ctx, end := tracing.StartClientSpan(ctx, "genexam.generate",
		attribute.String("genexam.language", lang),
		attribute.Bool("genexam.sandbox", sandbox),
	)
	defer func() { end(err) }()

	r := c.client.R().SetContext(ctx).SetBody(req)
	if ep.APIKey != "" {
		r.SetHeader(ep.KeyHeader, ep.APIKey)
	}

	resp, err := r.Post(url)
	if err != nil {
		return nil, util.NewUpstreamError("Failed to fetch data from API", err)
	}
	if resp.IsError() {
		return nil, util.NewUpstreamError("Failed to fetch data from API",
			fmt.Errorf("exam generation API returned %s", resp.Status())).WithDetails(resp.String())
	}
	return resp.Body(), nil
}
