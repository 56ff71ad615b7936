package queue

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/ent/generatedproject"
	"github.com/specsmith/specsmith/pkg/config"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
	testdb "github.com/specsmith/specsmith/test/database"
)

var owner = models.Identity{UserID: "user-owner", Handle: "owner"}

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentRuns:       2,
		PollInterval:            20 * time.Millisecond,
		PollIntervalJitter:      0,
		RunTimeout:              5 * time.Second,
		GracefulShutdownTimeout: 5 * time.Second,
		OrphanDetectionInterval: time.Hour,
		OrphanThreshold:         time.Minute,
	}
}

// stubGenerator returns scripted files or a scripted error.
type stubGenerator struct {
	files []services.GeneratedFileInput
	err   error
	calls atomic.Int64
}

func (g *stubGenerator) Generate(ctx context.Context, run *ent.GeneratedProject) ([]services.GeneratedFileInput, error) {
	g.calls.Add(1)
	return g.files, g.err
}

type queueFixture struct {
	specs     *services.SpecificationService
	generated *services.GeneratedService
	project   *ent.Project
}

func newQueueFixture(t *testing.T) *queueFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	projects := services.NewProjectService(client.Client)
	f := &queueFixture{
		specs:     services.NewSpecificationService(client.Client, nil, nil),
		generated: services.NewGeneratedService(client.Client, projects),
	}

	p, err := projects.Create(ctx, owner, models.CreateProjectRequest{Name: "inventory tracker"})
	require.NoError(t, err)
	f.project = p
	return f
}

func TestPool_ProcessCompletesRun(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	run, err := f.generated.Enqueue(ctx, owner, f.project.ID)
	require.NoError(t, err)
	claimed, err := f.generated.ClaimNext(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	gen := &stubGenerator{files: []services.GeneratedFileInput{
		{Path: "main.go", Content: "package main\n\nfunc main() {}\n"},
		{Path: "README.md", Content: "# inventory tracker\n"},
	}}
	pool := NewPool(testQueueConfig(), f.generated, gen, "pod-a", nil)
	pool.process(ctx, claimed)

	assert.EqualValues(t, 1, gen.calls.Load())

	done, err := f.generated.Get(ctx, owner, run.ID)
	require.NoError(t, err)
	assert.Equal(t, generatedproject.StatusCompleted, done.Status)
	assert.Equal(t, 2, done.FileCount)
	assert.Equal(t, 6, done.TotalLines)
	assert.NotNil(t, done.CompletedAt)

	files, err := f.generated.Files(ctx, owner, run.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)
	// Path order.
	assert.Equal(t, "README.md", files[0].Path)
	assert.Equal(t, 2, files[0].LineCount)
	assert.Equal(t, "main.go", files[1].Path)
	assert.Equal(t, 4, files[1].LineCount)
}

func TestPool_ProcessFailsRun(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	run, err := f.generated.Enqueue(ctx, owner, f.project.ID)
	require.NoError(t, err)
	claimed, err := f.generated.ClaimNext(ctx, "pod-a")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	gen := &stubGenerator{err: errors.New("gateway exploded")}
	pool := NewPool(testQueueConfig(), f.generated, gen, "pod-a", nil)
	pool.process(ctx, claimed)

	failed, err := f.generated.Get(ctx, owner, run.ID)
	require.NoError(t, err)
	assert.Equal(t, generatedproject.StatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "gateway exploded", *failed.ErrorMessage)

	files, err := f.generated.Files(ctx, owner, run.ID)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestPool_StartDrainsQueue(t *testing.T) {
	ctx := context.Background()
	f := newQueueFixture(t)

	run, err := f.generated.Enqueue(ctx, owner, f.project.ID)
	require.NoError(t, err)

	gen := &stubGenerator{files: []services.GeneratedFileInput{
		{Path: "main.go", Content: "package main\n"},
	}}
	pool := NewPool(testQueueConfig(), f.generated, gen, "pod-a", nil)
	pool.Start(ctx)
	defer pool.Stop()

	require.Eventually(t, func() bool {
		got, err := f.generated.Get(ctx, owner, run.ID)
		return err == nil && got.Status == generatedproject.StatusCompleted
	}, 5*time.Second, 20*time.Millisecond)
}
