// Package export renders a project's agreed specification set for download.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	specengine "github.com/specsmith/specsmith/pkg/engine/spec"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// Supported formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// ErrUnsupportedFormat means the requested format is not implemented.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Exporter renders projects to downloadable documents.
type Exporter struct {
	projects  *services.ProjectService
	specs     *services.SpecificationService
	conflicts *services.ConflictService
}

// NewExporter creates an Exporter.
func NewExporter(projects *services.ProjectService, specs *services.SpecificationService, conflicts *services.ConflictService) *Exporter {
	return &Exporter{projects: projects, specs: specs, conflicts: conflicts}
}

// document is the JSON export shape.
type document struct {
	Project    models.ProjectView      `json:"project"`
	Maturity   models.MaturityReport   `json:"maturity"`
	Specs      []models.SpecRecord     `json:"specifications"`
	Conflicts  []models.ConflictRecord `json:"conflicts"`
	ExportedAt time.Time               `json:"exported_at"`
}

// Export renders the project in the requested format, returning the bytes
// and their content type.
func (e *Exporter) Export(ctx context.Context, identity models.Identity, projectID, format string) ([]byte, string, error) {
	switch format {
	case FormatMarkdown, FormatJSON:
	default:
		return nil, "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	doc, err := e.load(ctx, identity, projectID)
	if err != nil {
		return nil, "", err
	}

	if format == FormatJSON {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal export: %w", err)
		}
		return data, "application/json", nil
	}

	return renderMarkdown(doc), "text/markdown", nil
}

func (e *Exporter) load(ctx context.Context, identity models.Identity, projectID string) (*document, error) {
	p, err := e.projects.Get(ctx, identity, projectID)
	if err != nil {
		return nil, err
	}
	current, err := e.specs.ListCurrent(ctx, projectID)
	if err != nil {
		return nil, err
	}
	report, err := e.specs.Maturity(ctx, projectID)
	if err != nil {
		return nil, err
	}
	conflicts, err := e.conflicts.List(ctx, identity, projectID, false)
	if err != nil {
		return nil, err
	}

	return &document{
		Project:    services.View(p),
		Maturity:   report,
		Specs:      current,
		Conflicts:  conflicts,
		ExportedAt: time.Now().UTC(),
	}, nil
}

func renderMarkdown(doc *document) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", doc.Project.Name)
	if doc.Project.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", doc.Project.Description)
	}
	fmt.Fprintf(&b, "- Phase: %s\n", doc.Project.CurrentPhase)
	fmt.Fprintf(&b, "- Maturity: %.1f / 100\n", doc.Maturity.Score)
	fmt.Fprintf(&b, "- Exported: %s\n\n", doc.ExportedAt.Format(time.RFC3339))

	byCategory := make(map[string][]models.SpecRecord)
	for _, s := range doc.Specs {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	b.WriteString("## Specifications\n\n")
	for _, category := range orderedCategories(byCategory) {
		specs := byCategory[category]
		sort.Slice(specs, func(i, j int) bool { return specs[i].Key < specs[j].Key })

		fmt.Fprintf(&b, "### %s\n\n", category)
		for _, s := range specs {
			fmt.Fprintf(&b, "- **%s**: %s _(confidence %.2f, %s)_\n", s.Key, s.Value, s.Confidence, s.Source)
		}
		b.WriteString("\n")
	}

	pending := pendingOf(doc.Conflicts)
	if len(pending) > 0 {
		b.WriteString("## Open conflicts\n\n")
		for _, c := range pending {
			fmt.Fprintf(&b, "- `%s.%s`: proposed %q (%s)\n", c.Category, c.Key, c.NewValue, c.Type)
		}
		b.WriteString("\n")
	}

	return []byte(b.String())
}

// orderedCategories yields the fixed maturity category order first, then any
// extra categories alphabetically.
func orderedCategories(byCategory map[string][]models.SpecRecord) []string {
	out := make([]string, 0, len(byCategory))
	for _, c := range specengine.Categories {
		if _, ok := byCategory[c]; ok {
			out = append(out, c)
		}
	}
	var extra []string
	for c := range byCategory {
		if !specengine.IsCategory(c) {
			extra = append(extra, c)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func pendingOf(conflicts []models.ConflictRecord) []models.ConflictRecord {
	var out []models.ConflictRecord
	for _, c := range conflicts {
		if c.Resolution == models.ResolutionPending {
			out = append(out, c)
		}
	}
	return out
}
