package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/slswebpack/internal/adapters/config"
	"go.trai.ch/slswebpack/internal/adapters/fs"
	"go.trai.ch/slswebpack/internal/adapters/serverless"
	"go.trai.ch/slswebpack/internal/adapters/telemetry"
	"go.trai.ch/slswebpack/internal/adapters/telemetry/progrock"
	"go.trai.ch/slswebpack/internal/app"
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/slswebpack/internal/core/ports/mocks"
	"go.trai.ch/slswebpack/internal/engine/entry"
	"go.uber.org/mock/gomock"
)

const helloService = `service: hello
functions:
  hello:
    handler: handler.handler
`

type project struct {
	root    string
	bundler *mocks.MockBundler
	logger  *mocks.MockLogger
	spans   *tracetest.SpanRecorder
	deps    app.Deps
}

func newProject(t *testing.T, files map[string]string) *project {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}

	ctrl := gomock.NewController(t)
	p := &project{
		root:    root,
		bundler: mocks.NewMockBundler(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		spans:   tracetest.NewSpanRecorder(),
	}
	p.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	p.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	p.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(p.spans))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	p.deps = app.Deps{
		Loader:    config.NewLoader(p.logger),
		Resolver:  entry.NewResolver(fs.NewMatcher()),
		Bundler:   p.bundler,
		Logger:    p.logger,
		Telemetry: progrock.New(),
		Tracer:    telemetry.NewOTelTracerFromProvider(tp, "test"),
	}
	return p
}

func (p *project) service(t *testing.T) *serverless.Service {
	t.Helper()
	svc, err := serverless.Load(filepath.Join(p.root, "serverless.yml"))
	require.NoError(t, err)
	return svc
}

func (p *project) plugin(t *testing.T, svc ports.Service) *app.Plugin {
	t.Helper()
	plugin, err := app.NewPlugin(svc, p.deps)
	require.NoError(t, err)
	t.Cleanup(func() { _ = plugin.Close() })
	return plugin
}

// expectBuild makes the bundler accept one unit, capturing its config.
func (p *project) expectBuild(t *testing.T, stats *domain.Stats) *domain.BuildConfig {
	t.Helper()
	captured := &domain.BuildConfig{}
	bc := mocks.NewMockBundleCompiler(gomock.NewController(t))
	p.bundler.EXPECT().NewCompiler(gomock.Any()).DoAndReturn(func(cfg domain.BuildConfig) (ports.BundleCompiler, error) {
		*captured = cfg
		return bc, nil
	})
	bc.EXPECT().Run(gomock.Any()).Return(stats, nil)
	bc.EXPECT().Close().Return(nil)
	return captured
}

func TestPlugin_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	p := newProject(t, map[string]string{"serverless.yml": helloService})

	host.EXPECT().AddCommand(app.BuildCommand)
	host.EXPECT().AddHook(domain.HookBeforeOfflineStart, gomock.Any())
	host.EXPECT().AddHook(domain.HookBeforeWebpackBuild, gomock.Any())
	host.EXPECT().AddHook(domain.HookBeforePackageArtifacts, gomock.Any())

	p.plugin(t, p.service(t)).Register(host)
}

func TestPlugin_DefaultOptions(t *testing.T) {
	p := newProject(t, map[string]string{"serverless.yml": helloService})

	assert.Equal(t, domain.Options{
		Configuration:   "webpack.config.yaml",
		OutputDirectory: "package",
	}, p.plugin(t, p.service(t)).Options())
}

func TestPlugin_CustomOptions(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml": helloService + `custom:
  serverless-webpack-compiler:
    outputDirectory: dist
`,
	})

	assert.Equal(t, domain.Options{
		Configuration:   "webpack.config.yaml",
		OutputDirectory: "dist",
	}, p.plugin(t, p.service(t)).Options())
}

func TestPlugin_InvalidOptions(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml": helloService + "custom:\n  serverless-webpack-compiler: nope\n",
	})

	_, err := app.NewPlugin(p.service(t), p.deps)
	require.ErrorContains(t, err, domain.ErrServiceParseFailed.Error())
}

func TestPlugin_BeforeWebpackBuild(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml":      helloService,
		"handler.js":          "exports.handler = async () => 'hi'\n",
		"webpack.config.yaml": "name: api\noptions:\n  platform: node\n",
	})
	svc := p.service(t)
	cfg := p.expectBuild(t, &domain.Stats{Hash: "abc"})

	require.NoError(t, p.plugin(t, svc).BeforeWebpackBuild(t.Context()))

	fn, err := svc.Function("hello")
	require.NoError(t, err)
	assert.Equal(t, "package/hello.handler", fn.Handler)

	assert.Equal(t, "api", cfg.Name)
	assert.Equal(t, map[string]string{"hello": filepath.Join(p.root, "handler.js")}, cfg.Entry)
	assert.Equal(t, domain.Output{
		LibraryTarget: domain.ModuleFormatCommonJS,
		Path:          filepath.Join(p.root, "package"),
		Filename:      "[name].js",
	}, cfg.Output)
	assert.Equal(t, "node", cfg.Options.Platform)
}

func TestPlugin_BeforeWebpackBuild_KeepsHandlerSymbol(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml":      "service: hello\nfunctions:\n  hello:\n    handler: handler.main\n",
		"handler.js":          "exports.main = async () => 'hi'\n",
		"handler.test.js":     "require('./handler')\n",
		"webpack.config.yaml": "name: api\n",
	})
	svc := p.service(t)
	cfg := p.expectBuild(t, &domain.Stats{Hash: "abc"})

	require.NoError(t, p.plugin(t, svc).BeforeWebpackBuild(t.Context()))

	fn, err := svc.Function("hello")
	require.NoError(t, err)
	assert.Equal(t, "package/hello.main", fn.Handler)
	assert.Equal(t, map[string]string{"hello": filepath.Join(p.root, "handler.js")}, cfg.Entry)
}

func TestPlugin_BeforeWebpackBuild_OwnFilename(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml":      helloService,
		"handler.js":          "exports.handler = async () => 'hi'\n",
		"webpack.config.yaml": "name: api\noutput:\n  filename: \"[name].cjs\"\n",
	})
	cfg := p.expectBuild(t, &domain.Stats{Hash: "abc"})

	require.NoError(t, p.plugin(t, p.service(t)).BeforeWebpackBuild(t.Context()))

	assert.Equal(t, domain.Output{
		LibraryTarget: domain.ModuleFormatCommonJS,
		Path:          filepath.Join(p.root, "package"),
		Filename:      "[name].cjs",
	}, cfg.Output)
}

func TestPlugin_EntryNotFound(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml":      helloService,
		"webpack.config.yaml": "name: api\n",
	})
	svc := p.service(t)

	err := p.plugin(t, svc).BeforeWebpackBuild(t.Context())
	require.ErrorContains(t, err, domain.ErrEntryNotFound.Error())

	fn, err := svc.Function("hello")
	require.NoError(t, err)
	assert.Equal(t, "handler.handler", fn.Handler)
}

func TestPlugin_ConfigNotFound(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml": helloService,
		"handler.js":     "exports.handler = () => {}\n",
	})

	err := p.plugin(t, p.service(t)).BeforeWebpackBuild(t.Context())
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestPlugin_BuildFailure(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml":      helloService,
		"handler.js":          "exports.handler = (\n",
		"webpack.config.yaml": "name: api\n",
	})
	p.expectBuild(t, &domain.Stats{Errors: []domain.Message{{Text: "Unexpected end of file"}}})

	err := p.plugin(t, p.service(t)).BeforeWebpackBuild(t.Context())
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	require.ErrorContains(t, err, "Unexpected end of file")
}

func TestPlugin_BeforeOfflineStart(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml":      helloService,
		"handler.js":          "exports.handler = () => {}\n",
		"webpack.config.yaml": "name: api\n",
	})
	svc := p.service(t)

	ctrl := gomock.NewController(t)
	bc := mocks.NewMockBundleCompiler(ctrl)
	var watchCtx context.Context
	p.bundler.EXPECT().NewCompiler(gomock.Any()).Return(bc, nil)
	bc.EXPECT().Watch(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ ports.WatchHooks) error {
		watchCtx = ctx
		return nil
	})
	bc.EXPECT().Close().Return(nil)

	plugin, err := app.NewPlugin(svc, p.deps)
	require.NoError(t, err)
	require.NoError(t, plugin.BeforeOfflineStart(t.Context()))

	fn, err := svc.Function("hello")
	require.NoError(t, err)
	assert.Equal(t, "package/hello.handler", fn.Handler)
	require.NoError(t, watchCtx.Err())

	require.NoError(t, plugin.Close())
	assert.ErrorIs(t, watchCtx.Err(), context.Canceled)
}

func TestPlugin_HookSpans(t *testing.T) {
	p := newProject(t, map[string]string{
		"serverless.yml": helloService,
	})
	svc := p.service(t)
	host := serverless.NewHost(p.logger, svc)
	p.plugin(t, svc).Register(host)

	err := host.Invoke(t.Context(), "webpack", "build")
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())

	ended := p.spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, domain.HookBeforeWebpackBuild, ended[0].Name())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}

func TestPlugin_CloseWithoutWatch(t *testing.T) {
	p := newProject(t, map[string]string{"serverless.yml": helloService})
	plugin := p.plugin(t, p.service(t))
	require.NoError(t, plugin.Close())
	require.NoError(t, plugin.Close())
}
