package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-games-library/internal/errors"
	"github.com/pribylovaa/go-games-library/internal/service"
	"github.com/pribylovaa/go-games-library/internal/trailer"
	logctx "github.com/pribylovaa/go-games-library/pkg/log"
)

// ListGames — сетка каталога в порядке сортировки по имени.
func (h *Handlers) ListGames(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	games := snap.Games()
	items := make([]GridItem, 0, len(games))
	for i, g := range games {
		items = append(items, GridItem{
			Index:    i,
			Name:     g.Name(),
			Slug:     g.Slug(),
			HasImage: g.HasImage(),
		})
	}

	writeJSON(w, http.StatusOK, GridResponse{
		CatalogID: snap.ID.String(),
		LoadedAt:  snap.LoadedAt,
		Items:     items,
	})
}

func (h *Handlers) GameByIndex(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	g, err := snap.At(index)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detailsFromModel(index, g))
}

func (h *Handlers) GameBySlug(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Catalog.Snapshot()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	g, index, err := snap.BySlug(chi.URLParam(r, "slug"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, detailsFromModel(index, g))
}

// GameImage отдаёт байты обложки. Отсутствующая обложка — 404.
func (h *Handlers) GameImage(w http.ResponseWriter, r *http.Request) {
	index, err := indexParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	g, err := snap.At(index)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if !g.HasImage() {
		apierrors.WriteError(w, r, service.ErrNotFound)
		return
	}

	img := g.Image()
	w.Header().Set("Content-Type", http.DetectContentType(img))
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}

// GameTrailer инициализирует плеер для трейлера записи и отдаёт исход.
//
// Особенности:
//   - ссылка короче идентификатора — 422;
//   - Failed (включая невосстановимый) — это 200 с state=failed: исход
//     инициализации является данными, а не ошибкой запроса;
//   - без Player исход всегда uninitialized.
func (h *Handlers) GameTrailer(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.GameTrailer"

	index, err := indexParam(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	snap, err := h.Catalog.Snapshot()
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	g, err := snap.At(index)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	id, err := trailer.VideoID(g.Trailer())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	out := trailer.Outcome{
		State:    trailer.Uninitialized,
		VideoID:  id,
		EmbedURL: trailer.EmbedURL(id, h.Style),
	}
	if h.Player != nil {
		res := trailer.Await(r.Context(), trailer.Initialize(r.Context(), h.Player, id, h.Style))
		if res.State != trailer.Uninitialized {
			out = res
		} else {
			out.Reason = res.Reason
		}
	}

	h.Metrics.TrailerInitialized(out.State.String())

	if out.State == trailer.Failed {
		logctx.From(r.Context()).Warn("trailer_init_failed",
			slog.String("op", op),
			slog.String("video_id", id),
			slog.Bool("recoverable", out.Recoverable),
			slog.String("reason", out.Reason),
		)
	}

	writeJSON(w, http.StatusOK, trailerFromOutcome(out))
}

// CatalogStatus — стадия загрузки каталога; всегда 200.
func (h *Handlers) CatalogStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{State: h.Catalog.State().String()}

	if snap, err := h.Catalog.Snapshot(); err == nil {
		loadedAt := snap.LoadedAt
		resp.CatalogID = snap.ID.String()
		resp.LoadedAt = &loadedAt
		resp.Games = snap.Len()
	}

	writeJSON(w, http.StatusOK, resp)
}
