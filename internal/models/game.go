// models содержит доменные сущности каталога игр.
package models

import (
	"slices"

	"github.com/gosimple/slug"

	"github.com/pribylovaa/go-games-library/internal/platforms"
)

// Game — запись каталога.
//
// Особенности:
//   - неизменяема после NewGame: поля закрыты, Platforms/Image отдают копии;
//   - platforms отсортированы по возрастанию сразу после заполнения;
//   - image == nil означает, что обложку получить не удалось.
type Game struct {
	name        string
	slug        string
	releaseDate string
	trailer     string
	imageURL    string
	image       []byte
	platforms   []string
}

// NewGame собирает запись. Коды платформ копируются и сортируются.
func NewGame(name, releaseDate, trailer, imageURL string, image []byte, codes []string) Game {
	sorted := slices.Clone(codes)
	slices.Sort(sorted)

	return Game{
		name:        name,
		slug:        slug.Make(name),
		releaseDate: releaseDate,
		trailer:     trailer,
		imageURL:    imageURL,
		image:       slices.Clone(image),
		platforms:   sorted,
	}
}

// Name — название игры, ключ сортировки каталога.
func (g Game) Name() string { return g.name }

// Slug — URL-безопасный идентификатор, производный от Name.
func (g Game) Slug() string { return g.slug }

// ReleaseDate — дата выхода как есть, без валидации.
func (g Game) ReleaseDate() string { return g.releaseDate }

// Trailer — ссылка на трейлер как есть.
func (g Game) Trailer() string { return g.trailer }

// ImageURL — исходная ссылка на обложку.
func (g Game) ImageURL() string { return g.imageURL }

// HasImage сообщает, удалось ли получить обложку.
func (g Game) HasImage() bool { return g.image != nil }

// Image возвращает копию байтов обложки или nil.
func (g Game) Image() []byte { return slices.Clone(g.image) }

// Platforms возвращает копию отсортированных кодов платформ.
func (g Game) Platforms() []string { return slices.Clone(g.platforms) }

// PlatformsText — строка платформ для экрана деталей; ok=false при пустом списке.
func (g Game) PlatformsText() (string, bool) {
	return platforms.Format(g.platforms)
}

// CompareByName — порядок каталога: простое побайтовое сравнение имён.
func CompareByName(a, b Game) int {
	switch {
	case a.name < b.name:
		return -1
	case a.name > b.name:
		return 1
	default:
		return 0
	}
}
