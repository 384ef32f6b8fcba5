package usecase

import (
	"funbook/internal/note/repository"
	pkgLog "funbook/pkg/log"
	"funbook/pkg/markdown"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.ContentRepository
	renderer *markdown.Renderer
}

// New creates a new note UseCase instance.
func New(l pkgLog.Logger, repo repository.ContentRepository, renderer *markdown.Renderer) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		renderer: renderer,
	}
}
