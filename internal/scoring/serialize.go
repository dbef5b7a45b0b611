package scoring

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// SerializeLowered flattens the record into its lowercased JSON form, the
// haystack every substring scan runs against. HTML escaping is disabled so
// that vocabulary terms containing "&" (such as "p&l") can still match.
// Newlines inside field values are escaped away by the JSON encoding, which
// the format-consistency check depends on.
func SerializeLowered(resume types.ParsedResume) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encode on a value of this shape cannot fail.
	_ = enc.Encode(resume)
	return strings.ToLower(strings.TrimSuffix(buf.String(), "\n"))
}
