package app

import (
	"bytes"
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// HandleFunctionURL serves a Lambda Function URL invocation through the same
// router the HTTP server uses.
func (a *App) HandleFunctionURL(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	httpReq, err := functionURLToRequest(ctx, req)
	if err != nil {
		return events.LambdaFunctionURLResponse{
			StatusCode: http.StatusBadRequest,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"status":"error","message":"Malformed request"}`,
		}, nil
	}

	w := newResponseBuffer()
	a.Router.ServeHTTP(w, httpReq)

	headers := make(map[string]string, len(w.header))
	var cookies []string
	for k, v := range w.header {
		if http.CanonicalHeaderKey(k) == "Set-Cookie" {
			cookies = append(cookies, v...)
			continue
		}
		headers[k] = strings.Join(v, ",")
	}

	return events.LambdaFunctionURLResponse{
		StatusCode: w.status,
		Headers:    headers,
		Body:       w.body.String(),
		Cookies:    cookies,
	}, nil
}

func functionURLToRequest(ctx context.Context, req events.LambdaFunctionURLRequest) (*http.Request, error) {
	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	path := req.RawPath
	if path == "" {
		path = req.RequestContext.HTTP.Path
	}
	target := path
	if req.RawQueryString != "" {
		target += "?" + req.RawQueryString
	}

	method := req.RequestContext.HTTP.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	for _, c := range req.Cookies {
		httpReq.Header.Add("Cookie", c)
	}
	httpReq.Host = req.RequestContext.DomainName
	httpReq.RemoteAddr = req.RequestContext.HTTP.SourceIP
	httpReq.ContentLength = int64(len(body))
	return httpReq, nil
}

// responseBuffer collects a handler's response in memory.
type responseBuffer struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: http.Header{}, status: http.StatusOK}
}

func (w *responseBuffer) Header() http.Header { return w.header }

func (w *responseBuffer) Write(b []byte) (int, error) { return w.body.Write(b) }

func (w *responseBuffer) WriteHeader(status int) { w.status = status }
