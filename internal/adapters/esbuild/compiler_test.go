package esbuild_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slswebpack/internal/adapters/esbuild"
	"go.trai.ch/slswebpack/internal/adapters/fs"
	"go.trai.ch/slswebpack/internal/adapters/watcher"
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/slswebpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type service struct {
	root string
	out  string
}

func newService(t *testing.T, files map[string]string) service {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return service{root: root, out: filepath.Join(root, "package")}
}

func (s service) unit(entries map[string]string) domain.BuildConfig {
	entry := make(map[string]string, len(entries))
	for name, src := range entries {
		entry[name] = filepath.Join(s.root, src)
	}
	return domain.BuildConfig{
		Entry: entry,
		Output: domain.Output{
			LibraryTarget: domain.ModuleFormatCommonJS,
			Path:          s.out,
			Filename:      domain.OutputFilenameTemplate,
		},
		WorkingDir: s.root,
	}
}

func newBundler(t *testing.T) *esbuild.Bundler {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return esbuild.NewBundler(fs.NewHasher(), watcher.NewFactory(log, fs.NewWalker(), 20*time.Millisecond))
}

func newCompiler(t *testing.T, cfg domain.BuildConfig) ports.BundleCompiler {
	t.Helper()
	c, err := newBundler(t).NewCompiler(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCompiler_Run(t *testing.T) {
	svc := newService(t, map[string]string{
		"handler.js":   "const { greet } = require('./lib/greet');\nmodule.exports.handler = async () => greet('world');\n",
		"lib/greet.js": "module.exports.greet = (name) => `hello ${name}`;\n",
		"src/other.ts": "export const main = async (): Promise<number> => 42;\n",
	})
	c := newCompiler(t, svc.unit(map[string]string{"hello": "handler.js", "other": "src/other.ts"}))

	stats, err := c.Run(t.Context())
	require.NoError(t, err)
	require.False(t, stats.HasErrors(), stats.Summary())

	require.Len(t, stats.Chunks, 2)
	assert.Equal(t, "hello.js", stats.Chunks[0].Name)
	assert.Equal(t, "other.js", stats.Chunks[1].Name)
	assert.Len(t, stats.Hash, 16)

	bundle, err := os.ReadFile(filepath.Join(svc.out, "hello.js"))
	require.NoError(t, err)
	assert.Contains(t, string(bundle), "hello ${name}")
	assert.Contains(t, string(bundle), "module.exports")
	assert.FileExists(t, filepath.Join(svc.out, "other.js"))

	again, err := c.Run(t.Context())
	require.NoError(t, err)
	assert.Equal(t, stats.Hash, again.Hash)
}

func TestCompiler_Run_CompileErrors(t *testing.T) {
	svc := newService(t, map[string]string{
		"handler.js": "module.exports.handler = async () => {\n",
	})
	c := newCompiler(t, svc.unit(map[string]string{"hello": "handler.js"}))

	stats, err := c.Run(t.Context())
	require.NoError(t, err)
	require.True(t, stats.HasErrors())
	assert.Equal(t, "handler.js", stats.Errors[0].File)
	assert.Contains(t, stats.Summary(), "1 error(s)")
	assert.NoFileExists(t, filepath.Join(svc.out, "hello.js"))
}

func TestCompiler_Run_MissingImport(t *testing.T) {
	svc := newService(t, map[string]string{
		"handler.js": "require('./missing');\n",
	})
	c := newCompiler(t, svc.unit(map[string]string{"hello": "handler.js"}))

	stats, err := c.Run(t.Context())
	require.NoError(t, err)
	require.True(t, stats.HasErrors())
	assert.Contains(t, stats.Errors[0].Text, "./missing")
}

func TestCompiler_Run_Cancelled(t *testing.T) {
	svc := newService(t, map[string]string{"handler.js": "module.exports.handler = 1;\n"})
	c := newCompiler(t, svc.unit(map[string]string{"hello": "handler.js"}))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestBundler_NewCompiler_SetupError(t *testing.T) {
	svc := newService(t, nil)
	cfg := svc.unit(map[string]string{"hello": "handler.js"})
	cfg.Output = domain.Output{}

	_, err := newBundler(t).NewCompiler(cfg)
	require.ErrorContains(t, err, domain.ErrBundlerSetupFailed.Error())
}

func TestCompiler_Watch(t *testing.T) {
	svc := newService(t, map[string]string{
		"handler.js": "module.exports.handler = async () => 'one';\n",
	})
	c := newCompiler(t, svc.unit(map[string]string{"hello": "handler.js"}))

	starts := make(chan struct{}, 10)
	done := make(chan *domain.Stats, 10)
	hooks := ports.WatchHooks{
		OnStart: func() { starts <- struct{}{} },
		OnDone: func(stats *domain.Stats, err error) {
			assert.NoError(t, err)
			done <- stats
		},
	}

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	require.NoError(t, c.Watch(ctx, hooks))

	first := waitStats(t, done)
	require.False(t, first.HasErrors(), first.Summary())

	require.NoError(t, os.WriteFile(filepath.Join(svc.root, "handler.js"), []byte("module.exports.handler = async () => 'two';\n"), 0o600))

	second := waitStats(t, done)
	require.False(t, second.HasErrors(), second.Summary())
	assert.NotEqual(t, first.Hash, second.Hash)
	assert.GreaterOrEqual(t, len(starts), 2)

	bundle, err := os.ReadFile(filepath.Join(svc.out, "hello.js"))
	require.NoError(t, err)
	assert.Contains(t, string(bundle), "two")
}

func waitStats(t *testing.T, done <-chan *domain.Stats) *domain.Stats {
	t.Helper()
	select {
	case stats := <-done:
		return stats
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for a build")
		return nil
	}
}
