package config

import (
	"encoding/json"
	"fmt"
)

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full writes every setting; otherwise optional settings are commented
	// out.
	Full bool

	// Format is "yaml" (default) or "json". JSON templates carry no
	// comments.
	Format string
}

// DefaultTemplateHeader returns the header written above generated configs.
func DefaultTemplateHeader() string {
	return `# tsblank configuration
# See: https://github.com/yaklabco/tsblank`
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	if opts.Format == "json" {
		data, err := json.MarshalIndent(NewConfig(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
	if opts.Full {
		return []byte(fullTemplate), nil
	}
	return []byte(minimalTemplate), nil
}

const minimalTemplate = `# tsblank configuration
# See: https://github.com/yaklabco/tsblank

# Directory for generated JavaScript (empty = next to each source file)
# out_dir: dist

# Source extensions to transform
extensions:
  - .ts
  - .mts
  - .cts
  - .tsx

# Paths to skip (doublestar glob patterns)
ignore:
  - "**/node_modules/**"
  - "**/.git/**"

# Also rewrite TypeScript code fences in Markdown files
# markdown: false

# Treat syntax without a transform rule as an error
# strict: false
`

const fullTemplate = `# tsblank configuration - Full Template
# See: https://github.com/yaklabco/tsblank
#
# Every setting with its default value.

# Directory for generated JavaScript, mirroring the input tree.
# Empty writes each output next to its source (a.ts -> a.js).
out_dir: ""

# Source extensions to transform. Outputs map .ts -> .js, .mts -> .mjs,
# .cts -> .cjs and .tsx -> .jsx.
extensions:
  - .ts
  - .mts
  - .cts
  - .tsx

# Paths to skip (doublestar glob patterns, relative to the working directory)
ignore:
  - "**/node_modules/**"
  - "**/.git/**"

# Rewrite ` + "```ts" + `, ` + "```typescript" + ` and ` + "```tsx" + ` fences in Markdown files
markdown: false

# Also rewrite fences without a language tag that look like TypeScript
detect_untagged_fences: false

# Skip declaration files (.d.ts, .d.mts, .d.cts)
skip_declaration_files: true

# Treat syntax without a transform rule as an error instead of a warning
strict: false

# Number of parallel workers (0 = number of CPUs)
jobs: 0

# Back up outputs before overwriting them
backups:
  enabled: false
  mode: sidecar
`
