package tui

import (
	"github.com/MKhiriev/go-rx-api/internal/service"
	"github.com/MKhiriev/go-rx-api/models"
)

type usersLoadedMsg struct {
	users []models.User
	err   error
}

// refreshMsg is sent from the refresh job goroutine via Program.Send.
type refreshMsg struct {
	result service.RefreshResult
}

type clearStatusMsg struct{}
