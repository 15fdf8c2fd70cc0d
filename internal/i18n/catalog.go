// Package i18n is the display string table, keyed by language code and
// message key. Catalogs are embedded YAML files, one per language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// BaseLanguage is the fallback catalog for keys missing elsewhere.
const BaseLanguage = "en"

type catalogFile struct {
	Locale   string            `yaml:"locale"`
	Messages map[string]string `yaml:"messages"`
}

// Bundle holds every loaded catalog.
type Bundle struct {
	catalogs map[string]map[string]string
	codes    []string
	matcher  language.Matcher
}

//go:embed locales/*.yaml
var embeddedFS embed.FS

// LoadEmbedded loads the catalogs shipped with the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads locales/*.yaml from fsys. The file name must match the
// declared locale and the base language must be present.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, "locales/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("glob catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no catalog files found")
	}
	sort.Strings(paths)

	b := &Bundle{catalogs: map[string]map[string]string{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		var file catalogFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		code := strings.TrimSpace(file.Locale)
		if code == "" {
			return nil, fmt.Errorf("catalog %s: locale is required", p)
		}
		if want := strings.TrimSuffix(path.Base(p), path.Ext(p)); code != want {
			return nil, fmt.Errorf("catalog %s: locale %q must match file name %q", p, code, want)
		}
		if len(file.Messages) == 0 {
			return nil, fmt.Errorf("catalog %s: messages are required", p)
		}
		if _, err := language.Parse(code); err != nil {
			return nil, fmt.Errorf("catalog %s: parse locale %q: %w", p, code, err)
		}
		if _, dup := b.catalogs[code]; dup {
			return nil, fmt.Errorf("catalog %s: locale %q already loaded", p, code)
		}
		b.catalogs[code] = file.Messages
		b.codes = append(b.codes, code)
	}
	if _, ok := b.catalogs[BaseLanguage]; !ok {
		return nil, fmt.Errorf("base language %s is not defined in catalogs", BaseLanguage)
	}

	// The matcher falls back to its first tag, so the base language leads.
	sort.SliceStable(b.codes, func(i, j int) bool { return b.codes[i] == BaseLanguage && b.codes[j] != BaseLanguage })
	tags := make([]language.Tag, 0, len(b.codes))
	for _, code := range b.codes {
		tags = append(tags, language.Make(code))
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Languages returns the loaded language codes in sorted order.
func (b *Bundle) Languages() []string {
	out := append([]string(nil), b.codes...)
	sort.Strings(out)
	return out
}

// Has reports whether code names a loaded catalog.
func (b *Bundle) Has(code string) bool {
	_, ok := b.catalogs[code]
	return ok
}

// Match picks the best loaded language for a preference such as "zh-CN",
// "en_US.UTF-8" or an Accept-Language style list.
func (b *Bundle) Match(preferred string) string {
	preferred = strings.TrimSpace(preferred)
	if i := strings.IndexAny(preferred, ".@"); i >= 0 {
		preferred = preferred[:i]
	}
	preferred = strings.ReplaceAll(preferred, "_", "-")
	if preferred == "" {
		return BaseLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(tags) == 0 {
		return BaseLanguage
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return BaseLanguage
	}
	return b.codes[idx]
}

// Message looks up key in code, then in the base language. The key itself
// is returned when neither defines it.
func (b *Bundle) Message(code, key string) string {
	if msgs, ok := b.catalogs[code]; ok {
		if v, ok := msgs[key]; ok {
			return v
		}
	}
	if v, ok := b.catalogs[BaseLanguage][key]; ok {
		return v
	}
	return key
}

// Translator binds a bundle to one language.
type Translator struct {
	bundle *Bundle
	code   string
}

// Translator returns a lookup for code, falling back to the base language
// when code is not loaded.
func (b *Bundle) Translator(code string) Translator {
	if !b.Has(code) {
		code = BaseLanguage
	}
	return Translator{bundle: b, code: code}
}

// Language returns the bound language code.
func (t Translator) Language() string { return t.code }

// T returns the message for key.
func (t Translator) T(key string) string {
	return t.bundle.Message(t.code, key)
}

// F returns the message for key with {name} placeholders replaced by the
// following name/value pairs.
func (t Translator) F(key string, pairs ...any) string {
	msg := t.T(key)
	if len(pairs) < 2 {
		return msg
	}
	oldnew := make([]string, 0, len(pairs))
	for i := 0; i+1 < len(pairs); i += 2 {
		oldnew = append(oldnew, "{"+fmt.Sprint(pairs[i])+"}", fmt.Sprint(pairs[i+1]))
	}
	return strings.NewReplacer(oldnew...).Replace(msg)
}
