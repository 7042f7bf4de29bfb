package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/framegraph/internal/config"
	"github.com/vk/framegraph/internal/ctxlog"
	"github.com/vk/framegraph/internal/fsutil"
)

// FileExtension is the suffix of declaration files picked up from
// directories.
const FileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL declaration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every declaration file under paths and merges their blocks
// into one model. Files are read in path order, and blocks keep their order
// within a file.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, config.Converter, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.ExpandPaths(paths, FileExtension)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		return nil, nil, fmt.Errorf("no %s files found in %v", FileExtension, paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, g := range root.Graphs {
			if model.Graph != nil {
				return nil, nil, fmt.Errorf("%s: duplicate graph block", g.DefRange)
			}
			model.Graph = translateGraph(g)
		}
		for _, r := range root.Resources {
			res, err := translateResource(r)
			if err != nil {
				return nil, nil, err
			}
			model.Resources = append(model.Resources, res)
		}
		for _, n := range root.Nodes {
			model.Nodes = append(model.Nodes, translateNode(ctx, n))
		}
	}

	logger.Debug("HCL loading complete.", "resources", len(model.Resources), "nodes", len(model.Nodes), "has_graph_block", model.Graph != nil)
	return model, NewConverter(), nil
}
