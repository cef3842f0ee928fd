package handlers

import (
	"time"

	"github.com/pribylovaa/go-games-library/internal/models"
	"github.com/pribylovaa/go-games-library/internal/trailer"
)

// GridItem — ячейка сетки каталога.
type GridItem struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	HasImage bool   `json:"has_image"`
}

// GridResponse — ответ GET /games.
type GridResponse struct {
	CatalogID string     `json:"catalog_id"`
	LoadedAt  time.Time  `json:"loaded_at"`
	Items     []GridItem `json:"items"`
}

// GameDetails — карточка записи.
// VideoID пуст, если ссылка на трейлер короче идентификатора.
type GameDetails struct {
	Index         int      `json:"index"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	ReleaseDate   string   `json:"release_date"`
	Platforms     []string `json:"platforms"`
	PlatformsText string   `json:"platforms_text,omitempty"`
	Trailer       string   `json:"trailer"`
	VideoID       string   `json:"video_id,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	HasImage      bool     `json:"has_image"`
}

// TrailerResponse — исход инициализации плеера.
type TrailerResponse struct {
	VideoID     string `json:"video_id"`
	EmbedURL    string `json:"embed_url"`
	State       string `json:"state"`
	Recoverable bool   `json:"recoverable"`
	Reason      string `json:"reason,omitempty"`
}

// StatusResponse — ответ GET /catalog/status.
type StatusResponse struct {
	State     string     `json:"state"`
	CatalogID string     `json:"catalog_id,omitempty"`
	LoadedAt  *time.Time `json:"loaded_at,omitempty"`
	Games     int        `json:"games"`
}

func detailsFromModel(index int, g models.Game) GameDetails {
	text, _ := g.PlatformsText()
	id, _ := trailer.VideoID(g.Trailer())

	codes := g.Platforms()
	if codes == nil {
		codes = []string{}
	}

	return GameDetails{
		Index:         index,
		Name:          g.Name(),
		Slug:          g.Slug(),
		ReleaseDate:   g.ReleaseDate(),
		Platforms:     codes,
		PlatformsText: text,
		Trailer:       g.Trailer(),
		VideoID:       id,
		ImageURL:      g.ImageURL(),
		HasImage:      g.HasImage(),
	}
}

func trailerFromOutcome(o trailer.Outcome) TrailerResponse {
	return TrailerResponse{
		VideoID:     o.VideoID,
		EmbedURL:    o.EmbedURL,
		State:       o.State.String(),
		Recoverable: o.Recoverable,
		Reason:      o.Reason,
	}
}
