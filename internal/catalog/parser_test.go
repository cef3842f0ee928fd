package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubImages — ImageSource из фиксированной таблицы; запоминает порядок запросов.
type stubImages struct {
	mu    sync.Mutex
	data  map[string][]byte
	calls []string
}

func (s *stubImages) Image(_ context.Context, url string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, url)
	return s.data[url]
}

// mkGame — JSON одной записи; пустое поле в omit пропускается.
func mkGame(name string, omit ...string) string {
	fields := map[string]string{
		"name":         fmt.Sprintf("%q", name),
		"release_date": `"2017"`,
		"trailer":      `"https://www.youtube.com/watch?v=abcdefghijk"`,
		"image":        fmt.Sprintf("%q", "https://img.example/"+name+".png"),
		"platforms":    `["PS4","PC"]`,
	}

	for _, o := range omit {
		delete(fields, o)
	}

	parts := make([]string, 0, len(fields))
	for _, k := range []string{"name", "release_date", "trailer", "image", "platforms"} {
		if v, ok := fields[k]; ok {
			parts = append(parts, fmt.Sprintf("%q: %s", k, v))
		}
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

func mkCatalog(games ...string) []byte {
	return []byte(`{"games": [` + strings.Join(games, ",") + `]}`)
}

// TestParse_SortsByName — N записей на входе, N на выходе, по возрастанию имени.
func TestParse_SortsByName(t *testing.T) {
	t.Parallel()

	data := mkCatalog(mkGame("B"), mkGame("A"), mkGame("C"))

	games, err := Parse(context.Background(), data, nil)
	require.NoError(t, err)
	require.Len(t, games, 3)

	names := []string{games[0].Name(), games[1].Name(), games[2].Name()}
	require.Equal(t, []string{"A", "B", "C"}, names)
}

func TestParse_FieldsAndPlatformsSorted(t *testing.T) {
	t.Parallel()

	data := []byte(`{"games":[{"name":"Cuphead","release_date":"29/09/2017",
		"trailer":"https://www.youtube.com/watch?v=NN-9SQXoi50",
		"image":"https://img.example/cuphead.png",
		"platforms":["XONE","PC","MAC"]}]}`)

	img := []byte("png-bytes")
	src := &stubImages{data: map[string][]byte{"https://img.example/cuphead.png": img}}

	games, err := Parse(context.Background(), data, src)
	require.NoError(t, err)
	require.Len(t, games, 1)

	g := games[0]
	require.Equal(t, "Cuphead", g.Name())
	require.Equal(t, "29/09/2017", g.ReleaseDate())
	require.Equal(t, "https://www.youtube.com/watch?v=NN-9SQXoi50", g.Trailer())
	require.Equal(t, "https://img.example/cuphead.png", g.ImageURL())
	require.Equal(t, img, g.Image())
	require.Equal(t, []string{"MAC", "PC", "XONE"}, g.Platforms())

	text, ok := g.PlatformsText()
	require.True(t, ok)
	require.Equal(t, "Mac OS, PC e Xbox One", text)
}

// TestParse_MissingRequiredField_FailsWholeCatalog — ни одной записи при ошибке в одной.
func TestParse_MissingRequiredField_FailsWholeCatalog(t *testing.T) {
	t.Parallel()

	for _, field := range []string{"name", "release_date", "trailer", "platforms"} {
		data := mkCatalog(mkGame("A"), mkGame("B", field), mkGame("C"))

		games, err := Parse(context.Background(), data, nil)
		require.ErrorIs(t, err, ErrMalformedCatalog, field)
		require.Nil(t, games, field)
	}
}

func TestParse_WrongTypes_Malformed(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"trailer number":   `{"games":[{"name":"A","release_date":"x","trailer":42,"platforms":[]}]}`,
		"name null":        `{"games":[{"name":null,"release_date":"x","trailer":"t","platforms":[]}]}`,
		"name empty":       `{"games":[{"name":"","release_date":"x","trailer":"t","platforms":[]}]}`,
		"platform number":  `{"games":[{"name":"A","release_date":"x","trailer":"t","platforms":[1]}]}`,
		"platforms string": `{"games":[{"name":"A","release_date":"x","trailer":"t","platforms":"PC"}]}`,
		"item not object":  `{"games":["A"]}`,
		"games missing":    `{"items":[]}`,
		"games object":     `{"games":{}}`,
		"top-level array":  `[]`,
		"broken json":      `{"games":[`,
		"empty input":      ``,
		"games case twin":  `{"games":[],"Games":[{}]}`,
		"name case twin":   `{"games":[{"name":"A","NAME":"","release_date":"x","trailer":"t","platforms":[]}]}`,
		"image case twin":  `{"games":[{"name":"A","release_date":"x","trailer":"t","platforms":[],"Image":1}]}`,
		"trailer only Cap": `{"games":[{"name":"A","release_date":"x","Trailer":"t","platforms":[]}]}`,
	}

	for name, doc := range cases {
		_, err := Parse(context.Background(), []byte(doc), nil)
		require.ErrorIs(t, err, ErrMalformedCatalog, name)
	}
}

func TestParse_EmptyGames_OK(t *testing.T) {
	t.Parallel()

	games, err := Parse(context.Background(), []byte(`{"games":[]}`), nil)
	require.NoError(t, err)
	require.Empty(t, games)
}

// TestParse_ImageFailure_DoesNotAbort — сбой обложки не мешает записи и каталогу.
func TestParse_ImageFailure_DoesNotAbort(t *testing.T) {
	t.Parallel()

	src := &stubImages{data: map[string][]byte{
		"https://img.example/A.png": []byte("a"),
	}}

	data := mkCatalog(mkGame("B"), mkGame("A"))
	games, err := Parse(context.Background(), data, src)
	require.NoError(t, err)
	require.Len(t, games, 2)

	require.True(t, games[0].HasImage())
	require.False(t, games[1].HasImage())
	require.Equal(t, "https://img.example/B.png", games[1].ImageURL())

	// Обложки запрашиваются последовательно, в порядке документа.
	require.Equal(t, []string{"https://img.example/B.png", "https://img.example/A.png"}, src.calls)
}

// TestParse_ImageFieldOptional — отсутствующее/нестроковое image не запрашивается.
func TestParse_ImageFieldOptional(t *testing.T) {
	t.Parallel()

	src := &stubImages{}
	data := []byte(`{"games":[
		{"name":"A","release_date":"x","trailer":"t","platforms":[]},
		{"name":"B","release_date":"x","trailer":"t","platforms":[],"image":null},
		{"name":"C","release_date":"x","trailer":"t","platforms":[],"image":7}
	]}`)

	games, err := Parse(context.Background(), data, src)
	require.NoError(t, err)
	require.Len(t, games, 3)

	for _, g := range games {
		require.False(t, g.HasImage())
		require.Empty(t, g.ImageURL())
	}
	require.Empty(t, src.calls)
}

// TestParse_DuplicateNames_KeepDocumentOrder — стабильность сортировки.
func TestParse_DuplicateNames_KeepDocumentOrder(t *testing.T) {
	t.Parallel()

	data := []byte(`{"games":[
		{"name":"Same","release_date":"1","trailer":"t","platforms":[]},
		{"name":"Alpha","release_date":"0","trailer":"t","platforms":[]},
		{"name":"Same","release_date":"2","trailer":"t","platforms":[]}
	]}`)

	games, err := Parse(context.Background(), data, nil)
	require.NoError(t, err)
	require.Equal(t, "Alpha", games[0].Name())
	require.Equal(t, "1", games[1].ReleaseDate())
	require.Equal(t, "2", games[2].ReleaseDate())
}

// TestEntry_Decode_ExactKeys — декодер видит те же ключи, что и схема.
func TestEntry_Decode_ExactKeys(t *testing.T) {
	t.Parallel()

	var e entry
	require.Error(t, json.Unmarshal([]byte(`{"name":"","release_date":"x","trailer":"t","platforms":[]}`), &e))
	require.Error(t, json.Unmarshal([]byte(`{"NAME":"A","release_date":"x","trailer":"t","platforms":[]}`), &e))
	require.Error(t, json.Unmarshal([]byte(`{"name":"A","release_date":"x","platforms":[]}`), &e))

	var d document
	require.Error(t, json.Unmarshal([]byte(`{"Games":[]}`), &d))

	require.NoError(t, json.Unmarshal([]byte(`{"games":[{"name":"A","release_date":"x","trailer":"t","platforms":["PC"],"image":"u","extra":1}]}`), &d))
	require.Len(t, d.Games, 1)
	require.Equal(t, "A", d.Games[0].Name)
	require.Equal(t, []string{"PC"}, d.Games[0].Platforms)

	url, ok := d.Games[0].imageURL()
	require.True(t, ok)
	require.Equal(t, "u", url)
}
