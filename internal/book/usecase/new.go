package usecase

import (
	"sync"

	"funbook/internal/book/repository"
	"funbook/internal/model"
	pkgLog "funbook/pkg/log"
)

// implUseCase owns the catalog for the app lifetime: single writer
// (Refresh), immutable reads for everyone else. Records are never mutated in
// place; Refresh replaces the slice wholesale.
type implUseCase struct {
	l    pkgLog.Logger
	repo repository.FeedRepository

	mu     sync.RWMutex
	books  []model.Book
	loaded bool
}

// New creates a new catalog UseCase instance.
func New(l pkgLog.Logger, repo repository.FeedRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
