package queue

import (
	"context"
	"fmt"
	"strings"

	"github.com/specsmith/specsmith/ent"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/services"
)

// SpecBuilder generates project scaffolding from the agreed specification
// set through the LLM gateway.
type SpecBuilder struct {
	client llm.Client
	model  string
	specs  *services.SpecificationService
}

// NewSpecBuilder creates a SpecBuilder.
func NewSpecBuilder(client llm.Client, model string, specs *services.SpecificationService) *SpecBuilder {
	return &SpecBuilder{client: client, model: model, specs: specs}
}

type fileEnvelope struct {
	Files []struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	} `json:"files"`
}

const filesSchema = `{
  "type": "object",
  "properties": {
    "files": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "path": {"type": "string"},
          "content": {"type": "string"}
        },
        "required": ["path", "content"]
      }
    }
  },
  "required": ["files"]
}`

// Generate implements Generator.
func (b *SpecBuilder) Generate(ctx context.Context, run *ent.GeneratedProject) ([]services.GeneratedFileInput, error) {
	current, err := b.specs.ListCurrent(ctx, run.ProjectID)
	if err != nil {
		return nil, err
	}
	if len(current) == 0 {
		return nil, fmt.Errorf("project %s has no current specifications", run.ProjectID)
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Generate project scaffolding (version %d) from these agreed specifications:\n\n", run.Version)
	for _, s := range current {
		fmt.Fprintf(&prompt, "- [%s] %s = %s\n", s.Category, s.Key, s.Value)
	}

	var envelope fileEnvelope
	if _, err := llm.CompleteJSON(ctx, b.client, llm.Request{
		Model:      b.model,
		System:     builderSystemPrompt,
		UserPrompt: prompt.String(),
		JSONSchema: filesSchema,
	}, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Files) == 0 {
		return nil, fmt.Errorf("%w: no files generated", llm.ErrInvalidResponse)
	}

	files := make([]services.GeneratedFileInput, 0, len(envelope.Files))
	for _, f := range envelope.Files {
		if f.Path == "" {
			continue
		}
		files = append(files, services.GeneratedFileInput{Path: f.Path, Content: f.Content})
	}
	return files, nil
}

const builderSystemPrompt = "You generate an initial project skeleton from " +
	"structured specifications. Emit complete, buildable files. Honor the " +
	"declared tech stack exactly; invent nothing the specifications do not " +
	"support."
