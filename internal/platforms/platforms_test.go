package platforms

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestName_KnownCodes(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
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

	for code, want := range cases {
		require.Equal(t, want, Name(code), code)
	}
}

// TestName_UnknownCode_Identity — неизвестный код отдаётся без изменений.
func TestName_UnknownCode_Identity(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Weird", Name("Weird"))
	require.Equal(t, "", Name(""))
	require.Equal(t, "ps4", Name("ps4"), "регистр значим")
}

func TestFormat(t *testing.T) {
	t.Parallel()

	_, ok := Format(nil)
	require.False(t, ok)

	_, ok = Format([]string{})
	require.False(t, ok)

	cases := []struct {
		in   []string
		want string
	}{
		{[]string{"PS4"}, "PlayStation 4"},
		{[]string{"PC", "PS4"}, "PC e PlayStation 4"},
		{[]string{"LNX", "MAC", "PC"}, "Linux, Mac OS e PC"},
		{[]string{"LNX", "MAC", "PC", "Weird"}, "Linux, Mac OS, PC e Weird"},
	}

	for _, c := range cases {
		got, ok := Format(c.in)
		require.True(t, ok)
		require.Equal(t, c.want, got)
	}
}

// TestFormat_DoesNotReorder — Format не сортирует вход.
func TestFormat_DoesNotReorder(t *testing.T) {
	t.Parallel()

	got, ok := Format([]string{"PS4", "PC"})
	require.True(t, ok)
	require.Equal(t, "PlayStation 4 e PC", got)
}

func TestJoinerFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, Portuguese, JoinerFor(language.BrazilianPortuguese))
	require.Equal(t, English, JoinerFor(language.AmericanEnglish))
	require.Equal(t, Spanish, JoinerFor(language.Spanish))
	require.Equal(t, Portuguese, JoinerFor(language.Japanese))

	got, ok := JoinerFor(language.English).Format([]string{"LNX", "MAC", "PC"})
	require.True(t, ok)
	require.Equal(t, "Linux, Mac OS and PC", got)
}
