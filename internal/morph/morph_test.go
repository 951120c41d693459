package morph

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDictionary(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantErr   bool
		errSubstr string
	}{
		{name: "empty uses default", input: "", want: DictIPA},
		{name: "ipa", input: "ipa", want: DictIPA},
		{name: "uni uppercase", input: "UNI", want: DictUni},
		{name: "surrounding spaces", input: "  ipa ", want: DictIPA},
		{name: "unknown", input: "sudachi", wantErr: true, errSubstr: "unknown dictionary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDictionary(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
				assert.Contains(t, err.Error(), "ipa, uni")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", ModeNormal, false},
		{"normal", ModeNormal, false},
		{"Search", ModeSearch, false},
		{"extended", ModeExtended, false},
		{"C", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDictionaries(t *testing.T) {
	infos := Dictionaries()
	require.Len(t, infos, 2)

	assert.Equal(t, DictIPA, infos[0].Name)
	assert.True(t, infos[0].Default)
	assert.Equal(t, DictUni, infos[1].Name)
	assert.False(t, infos[1].Default)
	for _, info := range infos {
		assert.NotEmpty(t, info.Description)
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(Options{Dictionary: "nope"})
	assert.Error(t, err)

	_, err = New(Options{Mode: "nope"})
	assert.Error(t, err)

	_, err = New(Options{UserDict: filepath.Join(t.TempDir(), "missing.txt")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user dictionary")
}

func TestAnalyzer_Surfaces(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, DictIPA, a.Dictionary())
	assert.Equal(t, ModeNormal, a.Mode())

	got := a.Surfaces("すもももももももものうち")
	assert.Equal(t, []string{"すもも", "も", "もも", "も", "もも", "の", "うち"}, got)
}

func TestAnalyzer_SurfacesEmpty(t *testing.T) {
	a, err := New(Options{})
	require.NoError(t, err)

	assert.Empty(t, a.Surfaces(""))
}

func TestAnalyzer_Whitespace(t *testing.T) {
	input := "すもも の\nうち"

	dropping, err := New(Options{})
	require.NoError(t, err)
	for _, s := range dropping.Surfaces(input) {
		assert.False(t, isBlank(s), "blank surface %q should be dropped", s)
	}

	keeping, err := New(Options{KeepWhitespace: true})
	require.NoError(t, err)
	surfaces := keeping.Surfaces(input)
	var blanks int
	for _, s := range surfaces {
		assert.NotContains(t, s, "\n", "kept surfaces must fit on one line")
		if isBlank(s) {
			blanks++
		}
	}
	assert.Positive(t, blanks, "space tokens should be kept")
	assert.Contains(t, strings.Join(surfaces, ""), `\n`, "newline should be kept in escaped form")
}

func TestControlEscaper(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{" ", " "},
		{"\u3000", "\u3000"},
		{"\n", `\n`},
		{"\r\n", `\r\n`},
		{" \t ", ` \t `},
		{"\u2028", `\u2028`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, controlEscaper.Replace(tt.in), "input %q", tt.in)
	}
}

func TestAnalyzer_ConcatenationPreservesText(t *testing.T) {
	input := "東京都に住んでいます。"
	for _, mode := range []string{ModeNormal, ModeSearch} {
		t.Run(mode, func(t *testing.T) {
			a, err := New(Options{Mode: mode})
			require.NoError(t, err)

			var joined string
			for _, s := range a.Surfaces(input) {
				joined += s
			}
			assert.Equal(t, input, joined)
		})
	}
}

func TestAnalyzer_UserDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user.txt")
	require.NoError(t, os.WriteFile(path, []byte("すもももももも,すもも もも もも,スモモ モモ モモ,カスタム名詞\n"), 0o600))

	a, err := New(Options{UserDict: path})
	require.NoError(t, err)

	got := a.Surfaces("すもももももものうち")
	assert.Equal(t, []string{"すもももももも", "の", "うち"}, got)
}

func TestIsBlank(t *testing.T) {
	assert.True(t, isBlank(" "))
	assert.True(t, isBlank("\n\t"))
	assert.True(t, isBlank("　"))
	assert.True(t, isBlank(""))
	assert.False(t, isBlank("a "))
}
