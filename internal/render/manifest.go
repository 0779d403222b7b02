package render

import (
	"regexp"
	"sort"
	"strings"

	"github.com/go-faster/errors"
)

// placeholderRegex matches ${NAME} tokens as written in AndroidManifest.xml.
var placeholderRegex = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_.\-]*)\}`)

// UnknownPlaceholdersError lists tokens with no resolved value.
type UnknownPlaceholdersError struct {
	Names []string
}

func (e *UnknownPlaceholdersError) Error() string {
	return "unknown manifest placeholders: " + strings.Join(e.Names, ", ")
}

// ExpandManifest replaces ${NAME} tokens in template with the matching
// placeholder value. Unknown tokens are left as they are, or reported as
// an *UnknownPlaceholdersError when strict is set.
func ExpandManifest(template []byte, placeholders map[string]string, strict bool) ([]byte, error) {
	unknown := make(map[string]bool)

	out := placeholderRegex.ReplaceAllFunc(template, func(token []byte) []byte {
		name := string(placeholderRegex.FindSubmatch(token)[1])
		if v, ok := placeholders[name]; ok {
			return []byte(xmlAttrEscape(v))
		}
		unknown[name] = true
		return token
	})

	if strict && len(unknown) > 0 {
		names := make([]string, 0, len(unknown))
		for n := range unknown {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, errors.Wrap(&UnknownPlaceholdersError{Names: names}, "expand manifest")
	}
	return out, nil
}

// プレースホルダーは XML 属性値の中に置かれるため、最低限のエスケープを行う
var xmlAttrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;", `'`, "&apos;")

func xmlAttrEscape(s string) string {
	return xmlAttrEscaper.Replace(s)
}
