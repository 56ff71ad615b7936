package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// CompleteJSON runs a completion and unmarshals the response text into out.
// On a parse failure it performs exactly one repair pass, re-prompting with
// the malformed output, before failing with ErrInvalidResponse. Schema
// mismatches are never retried beyond that single pass. The failing
// completion is returned alongside ErrInvalidResponse so callers can still
// surface its raw text.
func CompleteJSON(ctx context.Context, client Client, req Request, out any) (*Completion, error) {
	completion, err := client.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(extractJSON(completion.Text)), out); err == nil {
		return completion, nil
	}

	// Single repair pass: hand the malformed output back.
	repair := req
	repair.UserPrompt = fmt.Sprintf(
		"The following output was supposed to be valid JSON%s but is not:\n\n%s\n\nReturn only the corrected JSON.",
		schemaHint(req.JSONSchema), completion.Text)

	repaired, err := client.Complete(ctx, repair)
	if err != nil {
		return nil, err
	}

	// Account for both calls.
	repaired.Usage.InputTokens += completion.Usage.InputTokens
	repaired.Usage.OutputTokens += completion.Usage.OutputTokens
	repaired.Usage.TotalTokens += completion.Usage.TotalTokens
	repaired.Latency += completion.Latency

	if err := json.Unmarshal([]byte(extractJSON(repaired.Text)), out); err != nil {
		return repaired, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return repaired, nil
}

func schemaHint(schema string) string {
	if schema == "" {
		return ""
	}
	return " matching the requested schema"
}

// extractJSON strips markdown code fences some providers wrap around JSON.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx >= 0 {
			text = text[idx+1:]
		}
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	return strings.TrimSpace(text)
}
