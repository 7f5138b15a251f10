package serverless_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/slswebpack/internal/adapters/serverless"
	"go.trai.ch/slswebpack/internal/core/domain"
)

const serviceYAML = `
service: demo
custom:
  serverless-webpack-compiler:
    configuration: build/webpack.yaml
    outputDirectory: dist
functions:
  hello:
    handler: handler.handler
  world:
    handler: src/world.main
`

func writeService(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.DefaultServiceFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeService(t, serviceYAML)

	svc, err := serverless.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", svc.Name())
	assert.Equal(t, filepath.Dir(path), svc.ServicePath())
	assert.Equal(t, []string{"hello", "world"}, svc.AllFunctions())

	fn, err := svc.Function("world")
	require.NoError(t, err)
	assert.Equal(t, domain.Function{Name: "world", Handler: "src/world.main"}, fn)
}

func TestLoad_LongServiceName(t *testing.T) {
	svc, err := serverless.Load(writeService(t, "service:\n  name: long-form\n"))
	require.NoError(t, err)
	assert.Equal(t, "long-form", svc.Name())
	assert.Empty(t, svc.AllFunctions())
}

func TestLoad_Errors(t *testing.T) {
	_, err := serverless.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.ErrorContains(t, err, domain.ErrServiceReadFailed.Error())

	_, err = serverless.Load(writeService(t, "functions: [unclosed\n"))
	require.ErrorContains(t, err, domain.ErrServiceParseFailed.Error())
}

func TestService_SetHandler(t *testing.T) {
	svc, err := serverless.Load(writeService(t, serviceYAML))
	require.NoError(t, err)

	require.NoError(t, svc.SetHandler("hello", "dist/hello.handler"))

	fn, err := svc.Function("hello")
	require.NoError(t, err)
	assert.Equal(t, "dist/hello.handler", fn.Handler)

	original, err := svc.OriginalHandler("hello")
	require.NoError(t, err)
	assert.Equal(t, "handler.handler", original)

	err = svc.SetHandler("missing", "x.y")
	require.ErrorContains(t, err, domain.ErrFunctionNotFound.Error())

	_, err = svc.Function("missing")
	require.ErrorContains(t, err, domain.ErrFunctionNotFound.Error())

	_, err = svc.OriginalHandler("missing")
	require.ErrorContains(t, err, domain.ErrFunctionNotFound.Error())
}

func TestService_Custom(t *testing.T) {
	svc, err := serverless.Load(writeService(t, serviceYAML))
	require.NoError(t, err)

	var opts domain.Options
	found, err := svc.Custom(domain.PluginID, &opts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.Options{Configuration: "build/webpack.yaml", OutputDirectory: "dist"}, opts)

	found, err = svc.Custom("other-plugin", &opts)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_CustomDecodeError(t *testing.T) {
	svc, err := serverless.Load(writeService(t, "custom:\n  serverless-webpack-compiler: [1, 2]\n"))
	require.NoError(t, err)

	var opts domain.Options
	found, err := svc.Custom(domain.PluginID, &opts)
	assert.True(t, found)
	require.ErrorContains(t, err, domain.ErrServiceParseFailed.Error())
}
