package mcpserver

import (
	"context"
	"embed"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"
)

//go:embed prompts/*.md
var promptAssets embed.FS

// promptMeta is the YAML frontmatter of an embedded prompt file. Name
// defaults to the file name without its extension.
type promptMeta struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// registerPrompts loads the embedded workflow prompts. A file with
// broken frontmatter is registered with its raw content rather than
// dropped, so a bad edit degrades the description instead of hiding
// the prompt.
func (s *Server) registerPrompts() {
	entries, err := promptAssets.ReadDir("prompts")
	if err != nil {
		return
	}

	for _, entry := range entries {
		fileName := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(fileName, ".md") {
			continue
		}
		raw, err := promptAssets.ReadFile("prompts/" + fileName)
		if err != nil {
			continue
		}

		meta, body := splitPrompt(string(raw))
		if meta.Name == "" {
			meta.Name = strings.TrimSuffix(fileName, ".md")
		}
		if strings.TrimSpace(body) == "" {
			continue
		}

		s.server.AddPrompt(&mcp.Prompt{
			Name:        meta.Name,
			Description: meta.Description,
		}, promptHandler(meta.Description, body))
	}
}

// splitPrompt separates "---" delimited YAML frontmatter from the
// prompt body. Content without a complete frontmatter block is all
// body.
func splitPrompt(raw string) (promptMeta, string) {
	var meta promptMeta

	rest, found := strings.CutPrefix(raw, "---\n")
	if !found {
		return meta, raw
	}
	head, body, found := strings.Cut(rest, "\n---\n")
	if !found {
		return meta, raw
	}
	if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
		return promptMeta{}, raw
	}
	return meta, strings.TrimLeft(body, "\n")
}

func promptHandler(description, body string) mcp.PromptHandler {
	return func(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		return &mcp.GetPromptResult{
			Description: description,
			Messages: []*mcp.PromptMessage{
				{Role: "user", Content: &mcp.TextContent{Text: body}},
			},
		}, nil
	}
}
