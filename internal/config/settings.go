package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Settings is the decoded content of a settings file.
type Settings struct {
	Input     *string `hcl:"input,optional"`
	Extension *string `hcl:"extension,optional"`
	Strict    *bool   `hcl:"strict,optional"`
	Parallel  *bool   `hcl:"parallel,optional"`

	Output *OutputBlock `hcl:"output,block"`
	Log    *LogBlock    `hcl:"log,block"`
}

// OutputBlock configures how results are rendered.
type OutputBlock struct {
	Format *string `hcl:"format,optional"`
}

// LogBlock configures the diagnostic logger.
type LogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses and decodes the settings file at path, evaluating expressions
// against evalCtx. A nil evalCtx allows only literal values.
func Load(path string, evalCtx *hcl.EvalContext) (*Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, diags)
	}

	var settings Settings
	diags = gohcl.DecodeBody(file.Body, evalCtx, &settings)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode settings file %s: %w", path, diags)
	}
	return &settings, nil
}
