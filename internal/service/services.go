package service

import (
	"github.com/MKhiriev/go-rx-api/internal/adapter"
	"github.com/MKhiriev/go-rx-api/internal/logger"
	"github.com/MKhiriev/go-rx-api/rxapi"
)

// Services bundles the client use cases.
type Services struct {
	Users   UserService
	Refresh RefreshJob
}

// NewServices wires the services over userAdapter. Refresh results are
// delivered through executor to the handler set with Refresh.SetHandler.
func NewServices(userAdapter adapter.UserAdapter, executor rxapi.Executor, logger *logger.Logger) *Services {
	users := NewUserService(userAdapter, logger.GetChildLogger())

	return &Services{
		Users:   users,
		Refresh: NewRefreshJob(users, executor),
	}
}
