package export

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
	testdb "github.com/specsmith/specsmith/test/database"
)

var (
	owner    = models.Identity{UserID: "user-owner", Handle: "owner"}
	stranger = models.Identity{UserID: "user-stranger", Handle: "stranger"}
)

type exportFixture struct {
	exporter *Exporter
	specs    *services.SpecificationService
	project  *ent.Project
}

func newExportFixture(t *testing.T) *exportFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	projects := services.NewProjectService(client.Client)
	specs := services.NewSpecificationService(client.Client, nil, nil)
	conflicts := services.NewConflictService(client.Client, projects, nil, nil)

	p, err := projects.Create(ctx, owner, models.CreateProjectRequest{
		Name:        "inventory tracker",
		Description: "Warehouse stock tracking.",
	})
	require.NoError(t, err)

	ingest := func(category, key, value string) {
		_, err := specs.Ingest(ctx, owner, p.ID, []models.SpecCandidate{{
			Category:   category,
			Key:        key,
			Value:      value,
			Confidence: 0.9,
			Source:     models.SourceUserInput,
		}})
		require.NoError(t, err)
	}
	ingest("goals", "primary_goal", "track stock levels")
	ingest("tech_stack", "language", "Go")
	// A disagreeing re-statement opens a pending conflict.
	ingest("tech_stack", "language", "Rust")

	return &exportFixture{
		exporter: NewExporter(projects, specs, conflicts),
		specs:    specs,
		project:  p,
	}
}

func TestExport_Markdown(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	data, contentType, err := f.exporter.Export(ctx, owner, f.project.ID, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "text/markdown", contentType)

	doc := string(data)
	assert.Contains(t, doc, "# inventory tracker")
	assert.Contains(t, doc, "Warehouse stock tracking.")
	assert.Contains(t, doc, "- Phase: discovery")
	assert.Contains(t, doc, "## Specifications")
	assert.Contains(t, doc, "- **primary_goal**: track stock levels")
	assert.Contains(t, doc, "- **language**: Go")

	// Categories render in the fixed maturity order.
	assert.Less(t, strings.Index(doc, "### goals"), strings.Index(doc, "### tech_stack"))

	assert.Contains(t, doc, "## Open conflicts")
	assert.Contains(t, doc, "`tech_stack.language`")
	assert.Contains(t, doc, `"Rust"`)
}

func TestExport_JSON(t *testing.T) {
	ctx := context.Background()
	f := newExportFixture(t)

	data, contentType, err := f.exporter.Export(ctx, owner, f.project.ID, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)

	var doc struct {
		Project struct {
			Name         string `json:"name"`
			CurrentPhase string `json:"current_phase"`
		} `json:"project"`
		Maturity struct {
			Score float64 `json:"score"`
		} `json:"maturity"`
		Specs     []models.SpecRecord     `json:"specifications"`
		Conflicts []models.ConflictRecord `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "inventory tracker", doc.Project.Name)
	assert.Equal(t, "discovery", doc.Project.CurrentPhase)
	assert.Greater(t, doc.Maturity.Score, 0.0)
	assert.Len(t, doc.Specs, 2)
	require.Len(t, doc.Conflicts, 1)
	assert.Equal(t, models.ResolutionPending, doc.Conflicts[0].Resolution)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	f := newExportFixture(t)
	_, _, err := f.exporter.Export(context.Background(), owner, f.project.ID, "pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExport_RequiresViewAccess(t *testing.T) {
	f := newExportFixture(t)
	_, _, err := f.exporter.Export(context.Background(), stranger, f.project.ID, FormatMarkdown)
	assert.ErrorIs(t, err, services.ErrForbidden)
}
