package rxapi

import (
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Encoding selects how Descriptor parameters are put on the wire.
type Encoding int

const (
	// EncodingURL appends parameters to the URL query string.
	EncodingURL Encoding = iota
	// EncodingJSON sends parameters as a JSON request body.
	EncodingJSON
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case EncodingURL:
		return "url"
	case EncodingJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Descriptor is an immutable snapshot of an API builder, taken when a
// subscriber attaches. Later builder mutations never reach a Descriptor
// that is already in flight.
type Descriptor struct {
	// URL is the raw target URL as configured by the caller.
	URL string
	// Method is the upper-case HTTP method.
	Method string
	// Headers are the request-specific headers, layered on top of the
	// session defaults.
	Headers Headers
	// Parameters are encoded according to Encoding. Nil means none.
	Parameters map[string]any
}

// Encoding derives the parameter encoding from the method: URL-encoded for
// GET, JSON-encoded otherwise.
func (d Descriptor) Encoding() Encoding {
	if d.Method == http.MethodGet {
		return EncodingURL
	}
	return EncodingJSON
}

// Validate reports a *ConfigurationError when the descriptor cannot be
// dispatched.
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.URL) == "" {
		return &ConfigurationError{Field: "url", Reason: "must be set before dispatch"}
	}
	if d.Method == "" {
		return &ConfigurationError{Field: "method", Reason: "must not be empty"}
	}
	return nil
}

// TargetURL returns the percent-encoded URL with URL-encoded parameters
// appended when Encoding is EncodingURL.
func (d Descriptor) TargetURL() string {
	target := percentEncodeQueryAllowed(d.URL)
	if d.Encoding() != EncodingURL || len(d.Parameters) == 0 {
		return target
	}

	query := encodeQuery(d.Parameters)
	if query == "" {
		return target
	}
	if strings.Contains(target, "?") {
		return target + "&" + query
	}
	return target + "?" + query
}

func (d Descriptor) clone() Descriptor {
	d.Headers = d.Headers.Clone()
	if d.Parameters != nil {
		d.Parameters = maps.Clone(d.Parameters)
	}
	return d
}

// percentEncodeQueryAllowed escapes every byte outside the URL-query-allowed
// set. Existing %XX escapes are preserved so pre-encoded URLs are not
// double-encoded.
func percentEncodeQueryAllowed(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '%' && i+2 < len(raw) && isHex(raw[i+1]) && isHex(raw[i+2]):
			b.WriteByte(c)
		case isQueryAllowed(c):
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

func isQueryAllowed(c byte) bool {
	if isAlphaNum(c) {
		return true
	}
	return strings.IndexByte("!$&'()*+,-./:;=?@_~", c) >= 0
}

// isComponentAllowed is the query-allowed set minus the general and
// sub-delimiters that would change the meaning of a key or value.
func isComponentAllowed(c byte) bool {
	if isAlphaNum(c) {
		return true
	}
	return strings.IndexByte("-._~/?", c) >= 0
}

func isAlphaNum(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func escapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; isComponentAllowed(c) {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// encodeQuery renders params as key=value pairs joined by "&". Keys are
// sorted, nested maps become key[sub], slices become key[] and booleans are
// written as 1/0.
func encodeQuery(params map[string]any) string {
	var components [][2]string
	for _, k := range slices.Sorted(maps.Keys(params)) {
		components = append(components, queryComponents(k, params[k])...)
	}

	pairs := make([]string, 0, len(components))
	for _, c := range components {
		pairs = append(pairs, escapeComponent(c[0])+"="+escapeComponent(c[1]))
	}
	return strings.Join(pairs, "&")
}

func queryComponents(key string, value any) [][2]string {
	switch v := value.(type) {
	case nil:
		return [][2]string{{key, ""}}
	case string:
		return [][2]string{{key, v}}
	case bool:
		if v {
			return [][2]string{{key, "1"}}
		}
		return [][2]string{{key, "0"}}
	case float64:
		return [][2]string{{key, strconv.FormatFloat(v, 'f', -1, 64)}}
	case float32:
		return [][2]string{{key, strconv.FormatFloat(float64(v), 'f', -1, 32)}}
	case fmt.Stringer:
		return [][2]string{{key, v.String()}}
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		keys := make([]string, 0, rv.Len())
		for _, mk := range rv.MapKeys() {
			keys = append(keys, mk.String())
		}
		slices.Sort(keys)

		var out [][2]string
		for _, nested := range keys {
			mv := rv.MapIndex(reflect.ValueOf(nested).Convert(rv.Type().Key()))
			out = append(out, queryComponents(key+"["+nested+"]", mv.Interface())...)
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			break
		}
		var out [][2]string
		for i := 0; i < rv.Len(); i++ {
			out = append(out, queryComponents(key+"[]", rv.Index(i).Interface())...)
		}
		return out
	}

	return [][2]string{{key, fmt.Sprint(value)}}
}
