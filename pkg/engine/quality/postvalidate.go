package quality

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
)

// Score deductions per finding severity. The score starts at 1.0; errors
// cost more than warnings, and the result is floored at zero.
const (
	issueDeduction   = 0.20
	warningDeduction = 0.05
)

// BiasScanner detects solution bias and leading phrasing in generated
// questions. Keywords and the product denylist are matched case-insensitively
// on word boundaries; leading patterns are configured regular expressions.
type BiasScanner struct {
	keywords []string
	products []*regexp.Regexp
	leading  []*regexp.Regexp
}

// NewBiasScanner compiles the configured patterns once.
func NewBiasScanner(cfg *config.BiasConfig) (*BiasScanner, error) {
	s := &BiasScanner{}
	for _, kw := range cfg.Keywords {
		s.keywords = append(s.keywords, strings.ToLower(kw))
	}
	for _, name := range cfg.ProductDenylist {
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`)
		if err != nil {
			return nil, fmt.Errorf("invalid product denylist entry %q: %w", name, err)
		}
		s.products = append(s.products, re)
	}
	for _, pat := range cfg.LeadingPatterns {
		re, err := regexp.Compile("(?i)" + pat)
		if err != nil {
			return nil, fmt.Errorf("invalid leading pattern %q: %w", pat, err)
		}
		s.leading = append(s.leading, re)
	}
	return s, nil
}

// Scan returns the bias findings for one question. Solution keywords and
// concrete product names are errors; leading phrasings are warnings.
func (s *BiasScanner) Scan(question string) (issues, warnings []models.QualityIssue) {
	lower := strings.ToLower(question)
	for _, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			issues = append(issues, models.QualityIssue{
				Type:     "solution_bias",
				Severity: models.SeverityError,
				Message:  fmt.Sprintf("question pushes a solution: contains %q", kw),
			})
		}
	}
	for _, re := range s.products {
		if m := re.FindString(question); m != "" {
			issues = append(issues, models.QualityIssue{
				Type:     "product_bias",
				Severity: models.SeverityError,
				Message:  fmt.Sprintf("question names a concrete product: %q", m),
			})
		}
	}
	for _, re := range s.leading {
		if m := re.FindString(question); m != "" {
			warnings = append(warnings, models.QualityIssue{
				Type:     "leading_question",
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("leading phrasing: %q", m),
			})
		}
	}
	return issues, warnings
}

// PostValidateQuestion scores a generated question. The score starts at 1.0
// and drops 0.20 per issue and 0.05 per warning; below the configured
// minimum, the verdict demands a regeneration. The same question always
// yields the same score.
func (e *Engine) PostValidateQuestion(question string) models.PostValidation {
	issues, warnings := e.bias.Scan(question)
	return e.scoreVerdict(issues, warnings)
}

// ArchitectureInput carries the generated architecture and the project facts
// it is checked against.
type ArchitectureInput struct {
	Content string

	// Requirement keys the architecture is expected to reference
	RequirementKeys []string

	// Estimated component count of the proposed architecture
	ComponentCount int

	// Declared team size; zero means unknown and skips the budget check
	TeamSize int

	// Whether the project carries security specifications
	HasSecuritySpecs bool
}

// componentsPerPerson bounds architecture complexity against team size.
const componentsPerPerson = 3

// PostValidateArchitecture checks a generated architecture for unreferenced
// requirements, complexity beyond what the team can carry, and a missing
// security section when the project has security specifications.
func (e *Engine) PostValidateArchitecture(in ArchitectureInput) models.PostValidation {
	var issues, warnings []models.QualityIssue

	lower := strings.ToLower(in.Content)
	for _, key := range in.RequirementKeys {
		if !strings.Contains(lower, strings.ToLower(key)) {
			warnings = append(warnings, models.QualityIssue{
				Type:     "unreferenced_requirement",
				Severity: models.SeverityWarning,
				Message:  fmt.Sprintf("architecture does not reference requirement %q", key),
			})
		}
	}

	if in.TeamSize > 0 && in.ComponentCount > in.TeamSize*componentsPerPerson {
		issues = append(issues, models.QualityIssue{
			Type:     "complexity_over_budget",
			Severity: models.SeverityError,
			Message: fmt.Sprintf("%d components exceeds the budget for a team of %d",
				in.ComponentCount, in.TeamSize),
		})
	}

	if in.HasSecuritySpecs && !strings.Contains(lower, "security") {
		issues = append(issues, models.QualityIssue{
			Type:     "missing_security_section",
			Severity: models.SeverityError,
			Message:  "project has security specifications but the architecture has no security section",
		})
	}

	return e.scoreVerdict(issues, warnings)
}

// PostValidateDefault approves operations that have no dedicated post-check.
func (e *Engine) PostValidateDefault() models.PostValidation {
	return models.PostValidation{Approved: true, QualityScore: 1.0}
}

// RegenerationHint summarizes a failed verdict for the regeneration prompt.
func RegenerationHint(v models.PostValidation) string {
	var parts []string
	for _, iss := range v.Issues {
		parts = append(parts, iss.Message)
	}
	for _, w := range v.Warnings {
		parts = append(parts, w.Message)
	}
	return strings.Join(parts, "; ")
}

func (e *Engine) scoreVerdict(issues, warnings []models.QualityIssue) models.PostValidation {
	score := 1.0 - issueDeduction*float64(len(issues)) - warningDeduction*float64(len(warnings))
	if score < 0 {
		score = 0
	}

	v := models.PostValidation{
		Approved:     score >= e.quality.MinQuestionScore,
		QualityScore: score,
		Issues:       issues,
		Warnings:     warnings,
	}
	if !v.Approved {
		v.ActionRequired = models.PostActionRegenerate
	}
	return v
}
