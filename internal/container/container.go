// Package container provides dependency injection for mdbview services.
//
// It wires together all the services and infrastructure components needed
// by the CLI, making them available through a single Container struct.
package container

import (
	"log/slog"

	"github.com/mdbview/mdbview/internal/service/decode"
	"github.com/mdbview/mdbview/internal/service/diagnostics"
	"github.com/mdbview/mdbview/internal/service/osfs"
	"github.com/mdbview/mdbview/internal/service/render"
)

// Container holds all application dependencies and services.
// It provides a centralized location for dependency management and injection.
type Container struct {
	Logger             *slog.Logger
	FileSystem         osfs.FileSystem
	DecodeService      decode.Service
	DiagnosticsService diagnostics.Service
	RenderService      render.Service
}

// New creates and initializes a Container with all required services and dependencies.
func New(logger *slog.Logger) *Container {
	fs := osfs.NewFileSystem()

	return &Container{
		Logger:             logger,
		FileSystem:         fs,
		DecodeService:      decode.NewService(logger, fs),
		DiagnosticsService: diagnostics.NewService(logger),
		RenderService:      render.NewService(logger),
	}
}
