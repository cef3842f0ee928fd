// catalog превращает JSON-документ со списком игр в упорядоченный
// набор models.Game.
//
// Правила:
//   - обязательные поля (name, release_date, trailer, platforms) проверяются
//     JSON-схемой; ошибка в любой записи отменяет весь каталог;
//   - обложка загружается по очереди для каждой записи и только «по возможности»:
//     сбой превращается в отсутствующее изображение;
//   - результат сортируется по имени (стабильно), платформы — внутри записи.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pribylovaa/go-games-library/internal/models"
	"github.com/pribylovaa/go-games-library/pkg/log"
)

// ErrMalformedCatalog — документ не разбирается или нарушает схему.
var ErrMalformedCatalog = errors.New("malformed catalog")

// maxSchemaErrors — сколько нарушений схемы попадает в текст ошибки.
const maxSchemaErrors = 5

//go:generate mockgen -source=parser.go -destination=../../mocks/mock_images.go -package=mocks

// ImageSource загружает обложку по ссылке.
//
// Требования к реализации:
//  1. Возвращает nil при любой ошибке (сеть, формат, битая ссылка) —
//     парсер не различает причины;
//  2. уважает ctx.
type ImageSource interface {
	Image(ctx context.Context, url string) []byte
}

var schemaLoader = gojsonschema.NewStringLoader(schema)

// Parse разбирает каталог. Возвращает ErrMalformedCatalog (обёрнутую),
// если документ невалиден; частичный результат не возвращается.
// images == nil — обложки не загружаются.
func Parse(ctx context.Context, data []byte, images ImageSource) ([]models.Game, error) {
	const op = "catalog.Parse"

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrMalformedCatalog, err)
	}

	var doc document
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w: decode: %v", op, ErrMalformedCatalog, err)
	}

	lg := log.From(ctx)

	games := make([]models.Game, 0, len(doc.Games))
	for _, e := range doc.Games {
		var img []byte
		url, ok := e.imageURL()
		if ok && images != nil {
			img = images.Image(ctx, url)
		}

		if img == nil {
			lg.Debug("image_absent",
				slog.String("op", op),
				slog.String("name", e.Name),
			)
		}

		games = append(games, models.NewGame(e.Name, e.ReleaseDate, e.Trailer, url, img, e.Platforms))
	}

	slices.SortStableFunc(games, models.CompareByName)

	return games, nil
}

// validate прогоняет документ через JSON-схему.
func validate(data []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return err
	}

	if res.Valid() {
		return nil
	}

	var msgs []string
	for i, e := range res.Errors() {
		if i >= maxSchemaErrors {
			break
		}
		msgs = append(msgs, e.String())
	}

	return errors.New(strings.Join(msgs, "; "))
}
