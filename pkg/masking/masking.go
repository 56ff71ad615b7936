// Package masking redacts credentials from user utterances before they are
// embedded in LLM prompts. Patterns are grouped; configuration selects which
// groups apply.
package masking

import (
	"fmt"
	"regexp"

	"github.com/specsmith/specsmith/pkg/config"
)

const maskReplacement = "[MASKED]"

// pattern is one named redaction rule.
type pattern struct {
	name string
	re   *regexp.Regexp
}

// patternGroups maps group names to their rules. The expressions target
// secrets that commonly leak into free-text answers: API keys, bearer
// tokens, passwords in connection strings, and private key blocks.
var patternGroups = map[string][]pattern{
	"api_keys": {
		{name: "openai_key", re: regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{20,}\b`)},
		{name: "aws_access_key", re: regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`)},
		{name: "github_token", re: regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`)},
		{name: "generic_api_key", re: regexp.MustCompile(`(?i)\b(api[_-]?key|apikey)\s*[=:]\s*\S+`)},
	},
	"passwords": {
		{name: "password_assignment", re: regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*\S+`)},
		{name: "connection_string", re: regexp.MustCompile(`\b[a-z+]+://[^:/\s]+:[^@\s]+@`)},
	},
	"tokens": {
		{name: "bearer_token", re: regexp.MustCompile(`(?i)\bbearer\s+[A-Za-z0-9._~+/-]+=*`)},
		{name: "jwt", re: regexp.MustCompile(`\beyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\b`)},
		{name: "private_key_block", re: regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`)},
	},
}

// GroupNames returns the available pattern group names.
func GroupNames() []string {
	return []string{"api_keys", "passwords", "tokens"}
}

// Masker applies the configured pattern groups to text.
type Masker struct {
	patterns []pattern
	enabled  bool
}

// NewMasker builds a masker from configuration. A nil config or disabled
// masking yields a pass-through masker. Unknown group names are an error so
// a typo cannot silently disable redaction.
func NewMasker(cfg *config.MaskingConfig) (*Masker, error) {
	if cfg == nil || !cfg.Enabled {
		return &Masker{}, nil
	}

	groups := cfg.PatternGroups
	if len(groups) == 0 {
		groups = GroupNames()
	}

	m := &Masker{enabled: true}
	for _, name := range groups {
		ps, ok := patternGroups[name]
		if !ok {
			return nil, fmt.Errorf("unknown masking pattern group %q", name)
		}
		m.patterns = append(m.patterns, ps...)
	}
	return m, nil
}

// Mask replaces every credential match with the mask marker.
func (m *Masker) Mask(text string) string {
	if !m.enabled {
		return text
	}
	for _, p := range m.patterns {
		text = p.re.ReplaceAllString(text, maskReplacement)
	}
	return text
}
