// Package grid loads batch conversion jobs from HCL files. A grid file
// declares one or more named `stitch` blocks, each pointing at six cube
// faces and optionally overriding resolution, rotation, output, format, and
// threads. Omitted settings inherit from the command-line flags.
package grid

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/cube2sphere/internal/ctxlog"
	"github.com/vk/cube2sphere/internal/fsutil"
	"github.com/vk/cube2sphere/internal/stitch"
)

// Job is one named conversion loaded from a grid file. Jobs run serially in
// declaration order.
type Job struct {
	Name    string
	Request stitch.Request
}

// stitchBlock is the HCL shape of a single `stitch` block. Resolution and
// rotation stay as expressions so their tuple values can be converted with
// proper diagnostics instead of gohcl's generic decode errors.
type stitchBlock struct {
	Name   string `hcl:"name,label"`
	Front  string `hcl:"front"`
	Back   string `hcl:"back"`
	Right  string `hcl:"right"`
	Left   string `hcl:"left"`
	Top    string `hcl:"top"`
	Bottom string `hcl:"bottom"`

	Resolution hcl.Expression `hcl:"resolution,optional"`
	Rotation   hcl.Expression `hcl:"rotation,optional"`
	Output     string         `hcl:"output,optional"`
	Format     string         `hcl:"format,optional"`
	Threads    int            `hcl:"threads,optional"`
}

// gridFile is the top-level structure of one grid file.
type gridFile struct {
	Stitches []*stitchBlock `hcl:"stitch,block"`
}

// Load parses path into the declared jobs. Path may be a single file or a
// directory searched recursively for .hcl files. Defaults supplies the
// request fields a block does not set.
func Load(ctx context.Context, path string, defaults stitch.Request) ([]Job, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading grid.", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("grid path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("scanning grid directory %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("no .hcl grid files found in %s", path)
		}
	}

	parser := hclparse.NewParser()
	var jobs []Job
	for _, file := range files {
		fileJobs, err := jobsFromFile(file, parser, defaults)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, fileJobs...)
	}
	logger.Debug("Grid loaded.", "jobs", len(jobs))
	return jobs, nil
}

// jobsFromFile parses a single HCL file and translates its stitch blocks
// into jobs.
func jobsFromFile(filePath string, parser *hclparse.Parser, defaults stitch.Request) ([]Job, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", filePath, diags)
	}

	var parsed gridFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode grid file %s: %w", filePath, diags)
	}

	jobs := make([]Job, 0, len(parsed.Stitches))
	for _, block := range parsed.Stitches {
		job, err := translateBlock(block, defaults)
		if err != nil {
			return nil, fmt.Errorf("stitch %q in %s: %w", block.Name, filePath, err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// translateBlock merges one stitch block over the defaults.
func translateBlock(block *stitchBlock, defaults stitch.Request) (Job, error) {
	req := defaults
	req.Faces = [6]string{block.Front, block.Back, block.Right, block.Left, block.Top, block.Bottom}

	res, set, err := decodeNumberTuple(block.Resolution, 2, "resolution")
	if err != nil {
		return Job{}, err
	}
	if set {
		req.Width, req.Height = int(res[0]), int(res[1])
	}

	rot, set, err := decodeNumberTuple(block.Rotation, 3, "rotation")
	if err != nil {
		return Job{}, err
	}
	if set {
		req.RotationX, req.RotationY, req.RotationZ = rot[0], rot[1], rot[2]
	}

	if block.Output != "" {
		req.Output = block.Output
	} else {
		// A block without an explicit output writes under its own name so
		// jobs in one grid never collide.
		req.Output = block.Name
	}
	if block.Format != "" {
		req.Format = block.Format
	}
	if block.Threads != 0 {
		req.Threads = block.Threads
	}

	return Job{Name: block.Name, Request: req}, nil
}
