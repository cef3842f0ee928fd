package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Ключи записи каталога.
var entryKeys = []string{"name", "release_date", "trailer", "image", "platforms"}

// document — корневой объект каталога.
type document struct {
	Games []entry
}

// entry описывает одну игру в JSON-каталоге.
type entry struct {
	// Name — название; обязательное непустое.
	Name string
	// ReleaseDate — дата выхода в произвольном формате.
	ReleaseDate string
	// Trailer — ссылка на ролик; идентификатор — последние 11 символов.
	Trailer string
	// Image — ссылка на обложку. Тип не проверяется схемой:
	// любое значение, кроме строки, трактуется как отсутствие обложки.
	Image json.RawMessage
	// Platforms — коды платформ.
	Platforms []string
}

// UnmarshalJSON читает только ключи в точном регистре, как их видит схема.
// Ключ, отличающийся от известного лишь регистром ("Games", "NAME"),
// делает документ неоднозначным и отклоняется.
func (d *document) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, "games")
	if err != nil {
		return err
	}

	return field(raw, "games", &d.Games)
}

// UnmarshalJSON — см. document.UnmarshalJSON.
func (e *entry) UnmarshalJSON(data []byte) error {
	raw, err := decodeObject(data, entryKeys...)
	if err != nil {
		return err
	}

	if err := errors.Join(
		field(raw, "name", &e.Name),
		field(raw, "release_date", &e.ReleaseDate),
		field(raw, "trailer", &e.Trailer),
		field(raw, "platforms", &e.Platforms),
	); err != nil {
		return err
	}

	if e.Name == "" {
		return errors.New("name must be non-empty")
	}

	e.Image = raw["image"]

	return nil
}

// decodeObject разбирает JSON-объект и отклоняет регистровые двойники known.
func decodeObject(data []byte, known ...string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	for key := range raw {
		for _, k := range known {
			if key != k && strings.EqualFold(key, k) {
				return nil, fmt.Errorf("ambiguous key %q (expected %q)", key, k)
			}
		}
	}

	return raw, nil
}

// field декодирует обязательный ключ key в dst.
func field(raw map[string]json.RawMessage, key string, dst any) error {
	v, ok := raw[key]
	if !ok {
		return fmt.Errorf("missing %q", key)
	}

	if err := json.Unmarshal(v, dst); err != nil {
		return fmt.Errorf("%q: %w", key, err)
	}

	return nil
}

// imageURL возвращает ссылку на обложку, если поле — строка.
func (e entry) imageURL() (string, bool) {
	if len(e.Image) == 0 {
		return "", false
	}

	var s *string
	if err := json.Unmarshal(e.Image, &s); err != nil || s == nil {
		return "", false
	}

	return *s, true
}

// schema — JSON Schema входного документа. Поле image намеренно не описано.
const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["games"],
  "properties": {
    "games": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "release_date", "trailer", "platforms"],
        "properties": {
          "name":         {"type": "string", "minLength": 1},
          "release_date": {"type": "string"},
          "trailer":      {"type": "string"},
          "platforms":    {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`
