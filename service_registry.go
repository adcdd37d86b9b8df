package main

import (
	"context"
	"fmt"
	"sync"
)

// Service is the lifecycle every registered service implements.
type Service interface {
	// Name identifies the service in logs and errors.
	Name() string
	// Initialize prepares the service before first use.
	Initialize(ctx context.Context) error
	// Shutdown releases whatever Initialize acquired.
	Shutdown() error
}

type serviceEntry struct {
	service  Service
	name     string
	critical bool // initialization failure aborts InitializeAll
}

// ServiceRegistry owns the services of one build, in registration order.
type ServiceRegistry struct {
	ctx      context.Context
	logger   func(string)
	services []serviceEntry
	byName   map[string]Service
	mu       sync.RWMutex
}

// NewServiceRegistry creates an empty registry. logger receives lifecycle
// failures that do not abort the caller.
func NewServiceRegistry(ctx context.Context, logger func(string)) *ServiceRegistry {
	return &ServiceRegistry{
		ctx:      ctx,
		logger:   logger,
		services: make([]serviceEntry, 0),
		byName:   make(map[string]Service),
	}
}

// Register adds a non-critical service. Names must be unique.
func (r *ServiceRegistry) Register(svc Service) error {
	return r.register(svc, false)
}

// RegisterCritical adds a service whose initialization failure stops the build.
func (r *ServiceRegistry) RegisterCritical(svc Service) error {
	return r.register(svc, true)
}

func (r *ServiceRegistry) register(svc Service, critical bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := svc.Name()
	if _, exists := r.byName[name]; exists {
		return WrapError("ServiceRegistry", "Register", fmt.Errorf("service %q already registered", name))
	}

	r.services = append(r.services, serviceEntry{
		service:  svc,
		name:     name,
		critical: critical,
	})
	r.byName[name] = svc
	return nil
}

// Get looks a service up by name. Callers type-assert the result.
func (r *ServiceRegistry) Get(name string) (Service, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	svc, ok := r.byName[name]
	return svc, ok
}

// Services returns the registered services in registration order.
func (r *ServiceRegistry) Services() []Service {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Service, len(r.services))
	for i, entry := range r.services {
		out[i] = entry.service
	}
	return out
}

// InitializeAll initializes services in registration order. A critical
// failure stops and is returned; other failures are logged and the service
// stays registered in a degraded state.
func (r *ServiceRegistry) InitializeAll() error {
	for _, entry := range r.snapshot() {
		if err := entry.service.Initialize(r.ctx); err != nil {
			if entry.critical {
				r.logger(fmt.Sprintf("Critical service %q failed to initialize: %v", entry.name, err))
				return WrapError("ServiceRegistry", "InitializeAll", fmt.Errorf("critical service %q failed: %w", entry.name, err))
			}
			r.logger(fmt.Sprintf("Non-critical service %q failed to initialize (degraded): %v", entry.name, err))
		}
	}
	return nil
}

// ShutdownAll shuts services down in reverse registration order. Errors are
// logged and do not stop the remaining shutdowns.
func (r *ServiceRegistry) ShutdownAll() {
	entries := r.snapshot()
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		if err := entry.service.Shutdown(); err != nil {
			r.logger(fmt.Sprintf("Service %q shutdown error: %v", entry.name, err))
		}
	}
}

func (r *ServiceRegistry) snapshot() []serviceEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entries := make([]serviceEntry, len(r.services))
	copy(entries, r.services)
	return entries
}
