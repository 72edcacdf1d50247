package service

import (
	"context"
	"encoding/json"
	"exam_backend/internal/config"
	"exam_backend/internal/util"
	"exam_backend/pkg/tracing"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
)

// WorkflowUpdate tells the caller's workflow that a quiz is ready.
type WorkflowUpdate struct {
	VersionTest       string
	BubbleQuizID      string
	Attempt           string
	QuizID            uint
	NumberOfQuestions int
}

type WorkflowNotifier struct {
	cfg    config.WorkflowConfig
	client *resty.Client
}

func NewWorkflowNotifier(cfg config.WorkflowConfig) *WorkflowNotifier {
	return &WorkflowNotifier{cfg: cfg, client: resty.New().SetTimeout(cfg.Timeout)}
}

// Notify calls the update_attempt_status workflow and returns its decoded
// response. A non-2xx reply is a status_update_failed error.
func (n *WorkflowNotifier) Notify(ctx context.Context, u WorkflowUpdate) (response interface{}, err error) {
	endpoint := fmt.Sprintf("%s/%s/api/1.1/wf/update_attempt_status",
		strings.TrimRight(n.cfg.BaseURL, "/"), url.PathEscape(u.VersionTest))

	ctx, end := tracing.StartClientSpan(ctx, "workflow.update_attempt_status",
		attribute.Int64("quiz.id", int64(u.QuizID)),
	)
	defer func() { end(err) }()

	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"key":                 n.cfg.Key,
			"bubble_quiz_id":      u.BubbleQuizID,
			"attempt":             u.Attempt,
			"quiz_id":             util.Uitoa(u.QuizID),
			"number_of_questions": strconv.Itoa(u.NumberOfQuestions),
		}).
		Get(endpoint)
	if err != nil {
		return nil, util.NewStatusUpdateError(err.Error(), err)
	}

	response = decodeLoose(resp.Body())
	if resp.IsError() {
		return nil, util.NewStatusUpdateError(response, fmt.Errorf("workflow returned %s", resp.Status()))
	}
	return response, nil
}

// decodeLoose returns JSON bodies decoded and anything else as text.
func decodeLoose(body []byte) interface{} {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return string(body)
	}
	return v
}
