package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/slswebpack/internal/app"
	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"slswebpack": func() {
			os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, provideComponents))
		},
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/script",
		Setup: func(env *testscript.Env) error {
			env.Setenv("NO_COLOR", "1")
			return nil
		},
	})
}

func staticProvider(components *app.Components) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}
}

// TestRun_Success verifies that run returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer),
		staticProvider(&app.Components{App: app.New(app.Deps{Logger: mockLogger}), Logger: mockLogger}))

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "slswebpack version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrServiceReadFailed.Error())
	})

	exitCode := run(context.Background(),
		[]string{"--service", "does-not-exist.yml", "package"},
		new(bytes.Buffer), new(bytes.Buffer),
		staticProvider(&app.Components{App: app.New(app.Deps{Logger: mockLogger}), Logger: mockLogger}))

	assert.Equal(t, 1, exitCode)
}

// TestRun_CleanupCalled verifies that the provider's cleanup runs after execution.
func TestRun_CleanupCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cleaned := false
	provider := func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: app.New(app.Deps{Logger: mockLogger}), Logger: mockLogger},
			func() { cleaned = true }, nil
	}

	assert.Equal(t, 0, run(context.Background(), []string{"version"}, new(bytes.Buffer), new(bytes.Buffer), provider))
	assert.True(t, cleaned)
}
