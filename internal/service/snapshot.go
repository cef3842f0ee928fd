package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-games-library/internal/models"
)

// State — стадия загрузки каталога.
type State int32

const (
	StateLoading State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot — неизменяемый каталог одной сессии.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time
	games    []models.Game
	bySlug   map[string]int
}

func newSnapshot(games []models.Game, now time.Time) *Snapshot {
	bySlug := make(map[string]int, len(games))
	for i, g := range games {
		// При совпадении slug выигрывает первая запись в порядке каталога.
		if _, ok := bySlug[g.Slug()]; !ok {
			bySlug[g.Slug()] = i
		}
	}

	return &Snapshot{
		ID:       uuid.New(),
		LoadedAt: now,
		games:    games,
		bySlug:   bySlug,
	}
}

// Len — число записей.
func (s *Snapshot) Len() int { return len(s.games) }

// Games возвращает копию упорядоченного списка записей.
func (s *Snapshot) Games() []models.Game {
	out := make([]models.Game, len(s.games))
	copy(out, s.games)
	return out
}

// At возвращает запись по индексу в каталоге.
func (s *Snapshot) At(index int) (models.Game, error) {
	if index < 0 || index >= len(s.games) {
		return models.Game{}, ErrNotFound
	}

	return s.games[index], nil
}

// BySlug возвращает запись и её индекс по slug.
func (s *Snapshot) BySlug(slug string) (models.Game, int, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return models.Game{}, 0, ErrNotFound
	}

	return s.games[i], i, nil
}
