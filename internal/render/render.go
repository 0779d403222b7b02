// Package render writes resolved manifest placeholders in the formats
// build tooling consumes, and expands ${NAME} tokens in manifest templates.
package render

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/yacchi/mapskey/internal/properties"
	"github.com/yacchi/mapskey/internal/resolver"
	"github.com/yacchi/mapskey/internal/ui"
)

// Format は出力形式
type Format string

const (
	FormatTable      Format = "table"
	FormatJSON       Format = "json"
	FormatYAML       Format = "yaml"
	FormatProperties Format = "properties"
	FormatEnv        Format = "env"
	FormatGradle     Format = "gradle"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatProperties, FormatEnv, FormatGradle}

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat は文字列を Format に変換する（大文字小文字は区別しない）
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// MaskString は --mask 指定時に値の代わりに表示する文字列
const MaskString = "********"

// Options controls Write.
type Options struct {
	// Mask hides values and shows a fingerprint instead.
	Mask bool
}

// Fingerprint returns a short blake2b-256 digest of value, enough to tell
// two keys apart without printing them.
func Fingerprint(value string) string {
	sum := blake2b.Sum256([]byte(value))
	return "blake2b:" + hex.EncodeToString(sum[:6])
}

func display(value string, opts Options) string {
	if !opts.Mask {
		return value
	}
	return MaskString + " (" + Fingerprint(value) + ")"
}

// Write renders r to w in the given format.
func Write(w io.Writer, r *resolver.Resolved, format Format, opts Options) error {
	switch format {
	case FormatTable, "":
		return writeTable(w, r, opts)
	case FormatJSON:
		return writeJSON(w, r, opts)
	case FormatYAML:
		return writeYAML(w, r, opts)
	case FormatProperties:
		return writeProperties(w, r, opts)
	case FormatEnv:
		return writeEnv(w, r, opts)
	case FormatGradle:
		return writeGradle(w, r, opts)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

func writeTable(w io.Writer, r *resolver.Resolved, opts Options) error {
	table := ui.NewTable("NAME", "PLACEHOLDER", "ORIGIN", "VALUE")
	for _, e := range r.Entries() {
		table.AddRow(e.Name, e.Placeholder, ui.OriginColor(string(e.Origin)), display(e.Value, opts))
	}
	table.Render(w)
	return nil
}

func writeJSON(w io.Writer, r *resolver.Resolved, opts Options) error {
	e := &jx.Encoder{}
	e.SetIdent(2)

	e.ObjStart()
	e.FieldStart("source")
	e.ObjStart()
	e.FieldStart("path")
	e.Str(r.Path())
	e.FieldStart("status")
	e.Str(string(r.Status()))
	e.ObjEnd()

	e.FieldStart("placeholders")
	e.ObjStart()
	for _, entry := range r.Entries() {
		e.FieldStart(entry.Placeholder)
		e.Str(display(entry.Value, opts))
	}
	e.ObjEnd()

	e.FieldStart("entries")
	e.ArrStart()
	for _, entry := range r.Entries() {
		e.ObjStart()
		e.FieldStart("name")
		e.Str(entry.Name)
		e.FieldStart("key")
		e.Str(entry.Key)
		e.FieldStart("placeholder")
		e.Str(entry.Placeholder)
		e.FieldStart("origin")
		e.Str(string(entry.Origin))
		e.FieldStart("value")
		e.Str(display(entry.Value, opts))
		e.ObjEnd()
	}
	e.ArrEnd()
	e.ObjEnd()

	if _, err := w.Write(e.Bytes()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

type yamlEntry struct {
	Name        string `yaml:"name"`
	Key         string `yaml:"key"`
	Placeholder string `yaml:"placeholder"`
	Origin      string `yaml:"origin"`
	Value       string `yaml:"value"`
}

type yamlDocument struct {
	Source struct {
		Path   string `yaml:"path"`
		Status string `yaml:"status"`
	} `yaml:"source"`
	Entries []yamlEntry `yaml:"entries"`
}

func writeYAML(w io.Writer, r *resolver.Resolved, opts Options) error {
	var doc yamlDocument
	doc.Source.Path = r.Path()
	doc.Source.Status = string(r.Status())
	for _, e := range r.Entries() {
		doc.Entries = append(doc.Entries, yamlEntry{
			Name:        e.Name,
			Key:         e.Key,
			Placeholder: e.Placeholder,
			Origin:      string(e.Origin),
			Value:       display(e.Value, opts),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "encode yaml")
	}
	return enc.Close()
}

func placeholderPairs(r *resolver.Resolved, opts Options) ([]string, map[string]string) {
	entries := r.Entries()
	keys := make([]string, 0, len(entries))
	values := make(map[string]string, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Placeholder)
		values[e.Placeholder] = display(e.Value, opts)
	}
	return keys, values
}

func writeProperties(w io.Writer, r *resolver.Resolved, opts Options) error {
	keys, values := placeholderPairs(r, opts)
	return properties.Encode(w, keys, values)
}

func writeEnv(w io.Writer, r *resolver.Resolved, opts Options) error {
	keys, values := placeholderPairs(r, opts)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s=%s\n", k, shellQuote(values[k])); err != nil {
			return err
		}
	}
	return nil
}

// writeGradle は build.gradle.kts の defaultConfig にそのまま貼れる形で出力する
func writeGradle(w io.Writer, r *resolver.Resolved, opts Options) error {
	keys, values := placeholderPairs(r, opts)
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "manifestPlaceholders[%s] = %s\n", kotlinQuote(k), kotlinQuote(values[k])); err != nil {
			return err
		}
	}
	return nil
}

// shellQuote は POSIX シェルで安全な形にクォートする
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_./:@+,=", r))
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

var kotlinEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`, "\n", `\n`, "\r", `\r`, "\t", `\t`)

// kotlinQuote は Kotlin の文字列リテラルにする（$ はテンプレート展開されないようエスケープ）
func kotlinQuote(s string) string {
	return `"` + kotlinEscaper.Replace(s) + `"`
}
