package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"skillcheck/internal/store"
)

// LoggingProvider is a decorator that records every generation request in
// the generation log table.
type LoggingProvider struct {
	inner Provider
	name  string
	logs  store.GenerationLogRepo
}

// WithLogging wraps a Provider with request logging. The name labels which
// credential/provider produced the row.
func WithLogging(p Provider, name string, logs store.GenerationLogRepo) Provider {
	return &LoggingProvider{inner: p, name: name, logs: logs}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.GenerationLogData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = resp.Text()
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the request but never fail the call because logging failed.
	if logErr := l.logs.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log generation request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n")

	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "\n[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}

	return b.String()
}
