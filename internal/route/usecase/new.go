package usecase

import (
	"github.com/google/uuid"

	"intent-router/internal/route"
	"intent-router/internal/router"
	"intent-router/pkg/log"
)

// maxTextChars rejects payloads far beyond anything a chat turn needs. The
// router truncates model prompts on its own, well below this.
const maxTextChars = 4000

type implUseCase struct {
	l      log.Logger
	router router.Router
	turns  route.TurnStore
	newID  func() string
}

var _ route.UseCase = (*implUseCase)(nil)

// New creates the route use case.
func New(l log.Logger, r router.Router, turns route.TurnStore) route.UseCase {
	return &implUseCase{
		l:      l,
		router: r,
		turns:  turns,
		newID:  uuid.NewString,
	}
}
