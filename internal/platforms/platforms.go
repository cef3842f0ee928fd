// platforms переводит короткие коды платформ в человекочитаемые названия
// и собирает из них строку для экрана деталей.
package platforms

import (
	"strings"

	"golang.org/x/text/language"
)

// names — закрытая таблица известных кодов.
var names = map[string]string{
	"X360":    "Xbox 360",
	"PS3":     "PlayStation 3",
	"PC":      "PC",
	"PS4":     "PlayStation 4",
	"XONE":    "Xbox One",
	"NS":      "Nintendo Switch",
	"MAC":     "Mac OS",
	"LNX":     "Linux",
	"Android": "Android",
	"iOS":     "iOS",
}

// Name возвращает полное название платформы по коду.
// Неизвестный код возвращается как есть.
func Name(code string) string {
	if name, ok := names[code]; ok {
		return name
	}

	return code
}

// Joiner — разделители для перечисления платформ.
//   - Sep ставится между всеми элементами, кроме последней пары;
//   - Last ставится перед последним элементом.
type Joiner struct {
	Sep  string
	Last string
}

var (
	// Portuguese — исходное правило: "A, B e C".
	Portuguese = Joiner{Sep: ", ", Last: " e "}
	// English — "A, B and C".
	English = Joiner{Sep: ", ", Last: " and "}
	// Spanish — "A, B y C".
	Spanish = Joiner{Sep: ", ", Last: " y "}
)

// Первый тег — запасной вариант matcher'а.
var (
	joinerTags = []language.Tag{language.Portuguese, language.English, language.Spanish}
	joiners    = []Joiner{Portuguese, English, Spanish}
	matcher    = language.NewMatcher(joinerTags)
)

// JoinerFor подбирает Joiner под язык. Для неподдерживаемых языков — Portuguese.
func JoinerFor(tag language.Tag) Joiner {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Portuguese
	}

	return joiners[idx]
}

// Format собирает строку платформ по исходному правилу (Portuguese).
// Пустой список -> ("", false).
func Format(codes []string) (string, bool) {
	return Portuguese.Format(codes)
}

// Format переводит коды в названия и склеивает их разделителями j.
// Порядок кодов не меняется: сортировка — ответственность вызывающего.
func (j Joiner) Format(codes []string) (string, bool) {
	if len(codes) == 0 {
		return "", false
	}

	var b strings.Builder
	b.WriteString(Name(codes[0]))

	for i := 1; i < len(codes)-1; i++ {
		b.WriteString(j.Sep)
		b.WriteString(Name(codes[i]))
	}

	if len(codes) > 1 {
		b.WriteString(j.Last)
		b.WriteString(Name(codes[len(codes)-1]))
	}

	return b.String(), true
}
