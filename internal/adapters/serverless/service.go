// Package serverless provides the in-process orchestration host: the service
// definition read from serverless.yml and the command lifecycle plugins hook into.
package serverless

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"go.trai.ch/slswebpack/internal/core/domain"
	"go.trai.ch/slswebpack/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Service = (*Service)(nil)

// Service is the in-memory service definition. Handler rewrites only touch memory.
type Service struct {
	mu        sync.RWMutex
	name      string
	path      string
	handlers  map[string]string
	originals map[string]string
	custom    map[string]yaml.Node
}

// Load reads and parses the service file at path.
func Load(path string) (*Service, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServiceReadFailed.Error()), "path", path)
	}

	data, err := os.ReadFile(absPath) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServiceReadFailed.Error()), "path", absPath)
	}

	var file serviceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrServiceParseFailed.Error()), "path", absPath)
	}

	return NewService(string(file.Service), filepath.Dir(absPath), file.handlers(), file.Custom), nil
}

// NewService creates a service rooted at path with the given function handlers.
func NewService(name, path string, handlers map[string]string, custom map[string]yaml.Node) *Service {
	s := &Service{
		name:      name,
		path:      path,
		handlers:  make(map[string]string, len(handlers)),
		originals: make(map[string]string, len(handlers)),
		custom:    custom,
	}
	for fn, handler := range handlers {
		s.handlers[fn] = handler
		s.originals[fn] = handler
	}
	return s
}

func (f *serviceFile) handlers() map[string]string {
	handlers := make(map[string]string, len(f.Functions))
	for name, fn := range f.Functions {
		handlers[name] = fn.Handler
	}
	return handlers
}

// Name returns the service name.
func (s *Service) Name() string {
	return s.name
}

// ServicePath returns the directory the service file lives in.
func (s *Service) ServicePath() string {
	return s.path
}

// AllFunctions returns the declared function names in sorted order.
func (s *Service) AllFunctions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Function returns the current definition of the named function.
func (s *Service) Function(name string) (domain.Function, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handler, ok := s.handlers[name]
	if !ok {
		return domain.Function{}, zerr.With(domain.ErrFunctionNotFound, "function", name)
	}
	return domain.Function{Name: name, Handler: handler}, nil
}

// OriginalHandler returns the handler the function was declared with.
func (s *Service) OriginalHandler(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	handler, ok := s.originals[name]
	if !ok {
		return "", zerr.With(domain.ErrFunctionNotFound, "function", name)
	}
	return handler, nil
}

// SetHandler replaces the handler of the named function.
func (s *Service) SetHandler(name, handler string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.handlers[name]; !ok {
		return zerr.With(domain.ErrFunctionNotFound, "function", name)
	}
	s.handlers[name] = handler
	return nil
}

// Custom decodes the custom block stored under key into out.
func (s *Service) Custom(key string, out any) (bool, error) {
	node, ok := s.custom[key]
	if !ok {
		return false, nil
	}
	if err := node.Decode(out); err != nil {
		return true, zerr.With(zerr.Wrap(err, domain.ErrServiceParseFailed.Error()), "custom", key)
	}
	return true, nil
}
