package esbuild

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o750
	filePerm = 0o644
)

var _ ports.BundleCompiler = (*Compiler)(nil)

// Compiler builds one unit through an esbuild build context.
type Compiler struct {
	cfg      domain.BuildConfig
	build    api.BuildContext
	hasher   ports.Hasher
	watchers ports.WatcherFactory

	// mu serializes builds, which share the esbuild context and the input cache.
	mu     sync.Mutex
	inputs map[string]string
}

// metafile is the part of esbuild's metafile the compiler reads.
type metafile struct {
	Inputs map[string]json.RawMessage `json:"inputs"`
}

// Run builds the unit once and writes its bundles.
func (c *Compiler) Run(ctx context.Context) (*domain.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	stop := context.AfterFunc(ctx, c.build.Cancel)
	result := c.build.Rebuild()
	stop()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		Errors:   convertMessages(result.Errors),
		Warnings: convertMessages(result.Warnings),
	}
	if stats.HasErrors() {
		return stats, nil
	}

	files := slices.SortedFunc(slices.Values(result.OutputFiles), func(a, b api.OutputFile) int {
		return strings.Compare(a.Path, b.Path)
	})
	digests := make([]string, 0, 2*len(files))
	for _, file := range files {
		if err := writeOutput(file); err != nil {
			return nil, err
		}
		chunk := domain.Chunk{Name: c.chunkName(file.Path), Hash: c.hasher.HashBytes(file.Contents)}
		stats.Chunks = append(stats.Chunks, chunk)
		digests = append(digests, chunk.Name, chunk.Hash)
	}
	stats.Hash = c.hasher.Combine(digests...)

	c.recordInputs(result.Metafile)

	return stats, nil
}

// Watch builds the unit now and again after every relevant batch of file changes,
// until ctx is cancelled. It returns once the watcher is running.
func (c *Compiler) Watch(ctx context.Context, hooks ports.WatchHooks) error {
	w, err := c.watchers.NewWatcher(c.cfg.Output.Path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	root := c.cfg.WorkingDir
	if root == "" {
		root = filepath.Dir(c.cfg.Entry[c.cfg.EntryNames()[0]])
	}
	if err := w.Start(ctx, root); err != nil {
		_ = w.Stop()
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}

	go func() {
		defer w.Stop() //nolint:errcheck // Best effort close when watching ends

		c.cycle(ctx, hooks)
		for batch := range w.Changes() {
			if ctx.Err() != nil {
				return
			}
			if !c.changed(batch) {
				continue
			}
			c.cycle(ctx, hooks)
		}
	}()

	return nil
}

// Close releases the esbuild context.
func (c *Compiler) Close() error {
	c.build.Dispose()
	return nil
}

func (c *Compiler) cycle(ctx context.Context, hooks ports.WatchHooks) {
	if hooks.OnStart != nil {
		hooks.OnStart()
	}
	stats, err := c.Run(ctx)
	if ctx.Err() != nil {
		return
	}
	if hooks.OnDone != nil {
		hooks.OnDone(stats, err)
	}
}

// changed reports whether a batch can affect the bundle: anything that is not a
// known input with unchanged content counts.
func (c *Compiler) changed(batch []ports.WatchEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, event := range batch {
		previous, known := c.inputs[event.Path]
		if !known || event.Operation != ports.OpWrite {
			return true
		}
		current, err := c.hasher.HashFile(event.Path)
		if err != nil || current != previous {
			return true
		}
	}
	return false
}

// recordInputs remembers the content hash of every file the last build read.
// The caller holds c.mu.
func (c *Compiler) recordInputs(raw string) {
	var meta metafile
	if err := json.Unmarshal([]byte(raw), &meta); err != nil {
		return
	}

	inputs := make(map[string]string, len(meta.Inputs))
	for input := range meta.Inputs {
		if strings.Contains(input, ":") {
			// Namespaced inputs (e.g. plugin virtual modules) have no file on disk.
			continue
		}
		path := input
		if !filepath.IsAbs(path) {
			path = filepath.Join(c.cfg.WorkingDir, filepath.FromSlash(input))
		}
		hash, err := c.hasher.HashFile(path)
		if err != nil {
			continue
		}
		inputs[path] = hash
	}
	c.inputs = inputs
}

func (c *Compiler) chunkName(path string) string {
	rel, err := filepath.Rel(c.cfg.Output.Path, path)
	if err != nil {
		return filepath.Base(path)
	}
	return filepath.ToSlash(rel)
}

func writeOutput(file api.OutputFile) error {
	if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", file.Path)
	}
	if err := os.WriteFile(file.Path, file.Contents, filePerm); err != nil { //nolint:gosec // bundles are not secret
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", file.Path)
	}
	return nil
}

func convertMessages(msgs []api.Message) []domain.Message {
	if len(msgs) == 0 {
		return nil
	}
	out := make([]domain.Message, 0, len(msgs))
	for _, msg := range msgs {
		m := domain.Message{Text: msg.Text}
		if msg.PluginName != "" {
			m.Text = "[plugin " + msg.PluginName + "] " + m.Text
		}
		if loc := msg.Location; loc != nil {
			m.File = loc.File
			m.Line = loc.Line
			m.Column = loc.Column
		}
		out = append(out, m)
	}
	return slices.Clip(out)
}
