package models

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNewGame_SortsPlatformsAndCopiesInput — сортировка и независимость от входного среза.
func TestNewGame_SortsPlatformsAndCopiesInput(t *testing.T) {
	t.Parallel()

	codes := []string{"PS4", "MAC", "PC", "NS"}
	g := NewGame("Celeste", "25/01/2018", "https://youtu.be/70d9irlxiB4", "https://img/c.png", nil, codes)

	require.Equal(t, []string{"MAC", "NS", "PC", "PS4"}, g.Platforms())
	require.Equal(t, []string{"PS4", "MAC", "PC", "NS"}, codes, "вход не должен меняться")

	text, ok := g.PlatformsText()
	require.True(t, ok)
	require.Equal(t, "Mac OS, Nintendo Switch, PC e PlayStation 4", text)
}

// TestGame_Immutable — изменения возвращённых срезов не влияют на запись.
func TestGame_Immutable(t *testing.T) {
	t.Parallel()

	img := []byte{1, 2, 3}
	g := NewGame("A", "", "", "", img, []string{"PC"})

	img[0] = 9
	require.Equal(t, []byte{1, 2, 3}, g.Image())

	p := g.Platforms()
	p[0] = "X"
	require.Equal(t, []string{"PC"}, g.Platforms())

	b := g.Image()
	b[1] = 9
	require.Equal(t, []byte{1, 2, 3}, g.Image())
}

func TestGame_AbsentImageAndPlatforms(t *testing.T) {
	t.Parallel()

	g := NewGame("A", "2017", "t", "https://bad", nil, nil)
	require.False(t, g.HasImage())
	require.Nil(t, g.Image())

	_, ok := g.PlatformsText()
	require.False(t, ok)
}

func TestGame_Slug(t *testing.T) {
	t.Parallel()

	g := NewGame("The Legend of Zelda: Breath of the Wild", "", "", "", nil, nil)
	require.Equal(t, "the-legend-of-zelda-breath-of-the-wild", g.Slug())
}

// TestCompareByName_Stable — равные имена сохраняют исходный порядок при SortStableFunc.
func TestCompareByName_Stable(t *testing.T) {
	t.Parallel()

	games := []Game{
		NewGame("B", "1", "", "", nil, nil),
		NewGame("A", "", "", "", nil, nil),
		NewGame("B", "2", "", "", nil, nil),
		NewGame("a", "", "", "", nil, nil),
	}
	slices.SortStableFunc(games, CompareByName)

	require.Equal(t, "A", games[0].Name())
	require.Equal(t, "1", games[1].ReleaseDate())
	require.Equal(t, "2", games[2].ReleaseDate())
	require.Equal(t, "a", games[3].Name(), "без case-folding: 'a' > 'B'")
}
