package handlers

import (
	"github.com/counselhub/counsel-api/internal/directory"
	"github.com/counselhub/counsel-api/internal/registry"
)

// Handler carries the stores every route handler needs.
type Handler struct {
	Registry    registry.Registry
	Consultants directory.Directory
}

func NewHandler(reg registry.Registry, consultants directory.Directory) *Handler {
	return &Handler{
		Registry:    reg,
		Consultants: consultants,
	}
}
