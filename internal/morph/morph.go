// Package morph adapts the kagome morphological analyzer to the surface-form
// interface used by the filter.
//
// All segmentation, morphological analysis and dictionary lookup happen inside
// kagome. This package only selects the dictionary and mode, loads them once,
// and reduces each analysis to the list of surfaces that should be printed.
package morph

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// Dictionary names accepted by ParseDictionary.
const (
	DictIPA = "ipa"
	DictUni = "uni"
)

// Mode names accepted by ParseMode.
const (
	ModeNormal   = "normal"
	ModeSearch   = "search"
	ModeExtended = "extended"
)

// Defaults used when Options fields are empty.
const (
	DefaultDictionary = DictIPA
	DefaultMode       = ModeNormal
)

// DictionaryInfo describes one built-in dictionary.
type DictionaryInfo struct {
	Name        string
	Description string
	Default     bool
}

type dictionaryEntry struct {
	description string
	load        func() *dict.Dict
}

var dictionaries = map[string]dictionaryEntry{
	DictIPA: {
		description: "IPADIC (mecab-ipadic-2.7.0-20070801)",
		load:        ipa.Dict,
	},
	DictUni: {
		description: "UniDic (unidic-mecab 2.1.2)",
		load:        uni.Dict,
	},
}

var modes = map[string]tokenizer.TokenizeMode{
	ModeNormal:   tokenizer.Normal,
	ModeSearch:   tokenizer.Search,
	ModeExtended: tokenizer.Extended,
}

// Dictionaries returns the built-in dictionaries sorted by name.
func Dictionaries() []DictionaryInfo {
	out := make([]DictionaryInfo, 0, len(dictionaries))
	for name, e := range dictionaries {
		out = append(out, DictionaryInfo{
			Name:        name,
			Description: e.description,
			Default:     name == DefaultDictionary,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// DictionaryNames returns the accepted dictionary names, sorted.
func DictionaryNames() []string {
	names := make([]string, 0, len(dictionaries))
	for name := range dictionaries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ModeNames returns the accepted mode names from coarsest to finest.
func ModeNames() []string {
	return []string{ModeNormal, ModeSearch, ModeExtended}
}

// ParseDictionary normalizes a dictionary name. Empty means the default.
func ParseDictionary(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return DefaultDictionary, nil
	}
	if _, ok := dictionaries[n]; !ok {
		return "", fmt.Errorf("unknown dictionary %q (available: %s)", name, strings.Join(DictionaryNames(), ", "))
	}
	return n, nil
}

// ParseMode normalizes a mode name. Empty means the default.
func ParseMode(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return DefaultMode, nil
	}
	if _, ok := modes[n]; !ok {
		return "", fmt.Errorf("unknown mode %q (available: %s)", name, strings.Join(ModeNames(), ", "))
	}
	return n, nil
}

// Options configures an Analyzer.
type Options struct {
	Dictionary     string
	Mode           string
	UserDict       string // path to a kagome user dictionary, optional
	KeepWhitespace bool
}

// Analyzer turns text into surface forms using one loaded dictionary.
type Analyzer struct {
	t              *tokenizer.Tokenizer
	mode           tokenizer.TokenizeMode
	dictionary     string
	modeName       string
	keepWhitespace bool
}

// New loads the dictionary (and user dictionary, if any) and returns an
// Analyzer ready for use.
func New(opts Options) (*Analyzer, error) {
	dictName, err := ParseDictionary(opts.Dictionary)
	if err != nil {
		return nil, err
	}
	modeName, err := ParseMode(opts.Mode)
	if err != nil {
		return nil, err
	}

	tokOpts := []tokenizer.Option{tokenizer.OmitBosEos()}
	if opts.UserDict != "" {
		udict, err := dict.NewUserDict(opts.UserDict)
		if err != nil {
			return nil, fmt.Errorf("failed to load user dictionary %s: %w", opts.UserDict, err)
		}
		tokOpts = append(tokOpts, tokenizer.UserDict(udict))
	}

	t, err := tokenizer.New(dictionaries[dictName].load(), tokOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tokenizer: %w", err)
	}

	return &Analyzer{
		t:              t,
		mode:           modes[modeName],
		dictionary:     dictName,
		modeName:       modeName,
		keepWhitespace: opts.KeepWhitespace,
	}, nil
}

// Dictionary returns the name of the loaded dictionary.
func (a *Analyzer) Dictionary() string { return a.dictionary }

// Mode returns the name of the segmentation mode.
func (a *Analyzer) Mode() string { return a.modeName }

// Surfaces analyzes text and returns the surface form of every token, in
// input order. Dummy tokens and empty surfaces are dropped, and so are
// whitespace-only surfaces unless the analyzer keeps whitespace. Kept
// whitespace surfaces have their control characters escaped (a newline
// becomes the two characters `\n`) so every surface fits on one output line.
func (a *Analyzer) Surfaces(text string) []string {
	tokens := a.t.Analyze(text, a.mode)
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Class == tokenizer.DUMMY || tok.Surface == "" {
			continue
		}
		surface := tok.Surface
		if isBlank(surface) {
			if !a.keepWhitespace {
				continue
			}
			surface = controlEscaper.Replace(surface)
		}
		out = append(out, surface)
	}
	return out
}

var controlEscaper = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
	"\v", `\v`,
	"\f", `\f`,
	"\u0085", `\u0085`,
	"\u2028", `\u2028`,
	"\u2029", `\u2029`,
)

func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
