package services

import (
	"sync"
	"time"

	"fastos/internal/config"
	"fastos/internal/models"
)

/**
 * Simulated service instance
 * @property {string} name - Service name
 * @property {models.RunStatus} status - Current lifecycle status
 * @property {string} startTime - Time the service last reached Running, RFC3339
 * @property {config.ServiceConfig} spec - Service configuration (delays)
 */
type ServiceInstance struct {
	Name      string
	Status    models.RunStatus
	StartTime string
	Spec      config.ServiceConfig
}

// Registry holds the fixed, ordered table of simulated services. The table
// content never changes after construction; only statuses do, and every
// status write goes through the registry so readers never observe a torn
// update.
type Registry struct {
	mu      sync.RWMutex
	ordered []*ServiceInstance
	byName  map[string]*ServiceInstance
}

func NewRegistry(specs []config.ServiceConfig) *Registry {
	r := &Registry{
		byName: make(map[string]*ServiceInstance, len(specs)),
	}
	for _, spec := range specs {
		svc := &ServiceInstance{
			Name:   spec.Name,
			Status: models.StatusStopped,
			Spec:   spec,
		}
		r.ordered = append(r.ordered, svc)
		r.byName[spec.Name] = svc
	}
	return r
}

// List returns the services in registry order. The returned slice is shared;
// callers must not modify it.
func (r *Registry) List() []*ServiceInstance {
	return r.ordered
}

func (r *Registry) Get(name string) *ServiceInstance {
	return r.byName[name]
}

func (r *Registry) Len() int {
	return len(r.ordered)
}

// SetStatus updates one service's status. Reaching Running also stamps the
// service's start time.
func (r *Registry) SetStatus(name string, status models.RunStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	svc, ok := r.byName[name]
	if !ok {
		return
	}
	svc.Status = status
	if status == models.StatusRunning {
		svc.StartTime = time.Now().Format(time.RFC3339)
	}
}

func (r *Registry) StatusOf(name string) models.RunStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if svc, ok := r.byName[name]; ok {
		return svc.Status
	}
	return ""
}

func (r *Registry) GetDetail(name string) (models.ServiceDetail, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.byName[name]
	if !ok {
		return models.ServiceDetail{}, false
	}
	return detailLocked(svc), true
}

// Details returns a consistent snapshot of every service in registry order.
func (r *Registry) Details() []models.ServiceDetail {
	r.mu.RLock()
	defer r.mu.RUnlock()
	details := make([]models.ServiceDetail, 0, len(r.ordered))
	for _, svc := range r.ordered {
		details = append(details, detailLocked(svc))
	}
	return details
}

func detailLocked(svc *ServiceInstance) models.ServiceDetail {
	return models.ServiceDetail{
		Name:          svc.Name,
		Status:        svc.Status,
		StartTime:     svc.StartTime,
		BootDelay:     svc.Spec.BootDelay.String(),
		ShutdownDelay: svc.Spec.ShutdownDelay.String(),
	}
}
