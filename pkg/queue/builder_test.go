package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/models"
)

func TestSpecBuilder_Generate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, f *queueFixture) {
		t.Helper()
		_, err := f.specs.Ingest(ctx, owner, f.project.ID, []models.SpecCandidate{
			{Category: "goals", Key: "primary_goal", Value: "track stock levels", Confidence: 0.9, Source: models.SourceUserInput},
			{Category: "tech_stack", Key: "language", Value: "Go", Confidence: 0.9, Source: models.SourceUserInput},
		})
		require.NoError(t, err)
	}

	t.Run("builds files from the current specifications", func(t *testing.T) {
		f := newQueueFixture(t)
		seed(t, f)

		stub := llm.NewStubClient(`{"files": [
			{"path": "go.mod", "content": "module tracker\n"},
			{"path": "", "content": "dropped"},
			{"path": "main.go", "content": "package main\n"}
		]}`)
		builder := NewSpecBuilder(stub, "test-model", f.specs)

		files, err := builder.Generate(ctx, &ent.GeneratedProject{ProjectID: f.project.ID, Version: 3})
		require.NoError(t, err)

		// Entries without a path are dropped.
		require.Len(t, files, 2)
		assert.Equal(t, "go.mod", files[0].Path)
		assert.Equal(t, "main.go", files[1].Path)

		// The prompt carries every agreed specification and the version.
		require.Len(t, stub.Requests, 1)
		prompt := stub.Requests[0].UserPrompt
		assert.Contains(t, prompt, "version 3")
		assert.Contains(t, prompt, "[goals] primary_goal = track stock levels")
		assert.Contains(t, prompt, "[tech_stack] language = Go")
	})

	t.Run("refuses a project without specifications", func(t *testing.T) {
		f := newQueueFixture(t)
		builder := NewSpecBuilder(llm.NewStubClient(`{"files": []}`), "test-model", f.specs)

		_, err := builder.Generate(ctx, &ent.GeneratedProject{ProjectID: f.project.ID, Version: 1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no current specifications")
	})

	t.Run("empty file set is an invalid response", func(t *testing.T) {
		f := newQueueFixture(t)
		seed(t, f)
		builder := NewSpecBuilder(llm.NewStubClient(`{"files": []}`), "test-model", f.specs)

		_, err := builder.Generate(ctx, &ent.GeneratedProject{ProjectID: f.project.ID, Version: 1})
		assert.ErrorIs(t, err, llm.ErrInvalidResponse)
	})
}
