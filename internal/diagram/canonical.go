package diagram

import (
	"bytes"
	"fmt"
	"slices"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces RFC 8785 style canonical JSON for hashing and
// golden-snapshot comparison. This is the ONLY serialization that may feed
// content-addressed identity computation.
//
// Properties:
//  1. Object keys emitted in UTF-16 code unit order
//  2. No HTML escaping (< > & are NOT escaped)
//  3. Strings are NFC normalized
//  4. No floats, no null (returns error)
//
// Supported inputs: the kernel value types (Diagram, Rewrite, Cospan, Cone,
// Generator) plus plain string/int/bool/[]any/map[string]any for building
// snapshot documents around them.
func MarshalCanonical(v any) ([]byte, error) {
	e := &canonicalEncoder{}
	var buf bytes.Buffer
	if err := e.encode(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type canonicalEncoder struct {
	depth int
}

func (e *canonicalEncoder) encode(buf *bytes.Buffer, v any) error {
	if e.depth >= maxTraversalDepth {
		return &CycleError{Message: "canonical encoding depth budget exceeded"}
	}
	e.depth++
	defer func() { e.depth-- }()

	switch val := v.(type) {
	case nil:
		return fmt.Errorf("null is forbidden in canonical JSON")
	case Diagram:
		return e.encodeDiagram(buf, val)
	case Rewrite:
		return e.encodeRewrite(buf, val)
	case Cospan:
		return e.encodeCospan(buf, val)
	case Cone:
		return e.encodeCone(buf, val)
	case Generator:
		return e.encodeGenerator(buf, val)
	case string:
		encodeCanonicalString(buf, val)
		return nil
	case int:
		fmt.Fprintf(buf, "%d", val)
		return nil
	case int64:
		fmt.Fprintf(buf, "%d", val)
		return nil
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
		return nil
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encode(buf, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
		return nil
	case map[string]any:
		return e.encodeMap(buf, val)
	case float64, float32:
		return fmt.Errorf("floats are forbidden in canonical JSON: %v", val)
	default:
		return fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
}

// Kernel values encode as objects with a fixed key set. The keys below are
// written literally in UTF-16 code unit order, which keeps the output RFC
// 8785 conformant without a sort at runtime.

func (e *canonicalEncoder) encodeGenerator(buf *bytes.Buffer, g Generator) error {
	buf.WriteByte('{')
	buf.WriteString(`"id":`)
	encodeCanonicalString(buf, g.ID)
	if g.Label != "" {
		buf.WriteString(`,"label":`)
		encodeCanonicalString(buf, g.Label)
	}
	if g.Polarity != PolarityNone {
		buf.WriteString(`,"polarity":`)
		encodeCanonicalString(buf, string(g.Polarity))
	}
	buf.WriteByte('}')
	return nil
}

func (e *canonicalEncoder) encodeDiagram(buf *bytes.Buffer, d Diagram) error {
	switch v := d.(type) {
	case *DiagramZero:
		buf.WriteString(`{"dimension":0,"generator":`)
		if err := e.encodeGenerator(buf, v.Generator); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	case *DiagramN:
		buf.WriteString(`{"cospans":[`)
		for i, cs := range v.Cospans {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encode(buf, cs); err != nil {
				return fmt.Errorf("cospans[%d]: %w", i, err)
			}
		}
		fmt.Fprintf(buf, `],"dimension":%d,"source":`, v.Dim)
		if err := e.encode(buf, v.Source); err != nil {
			return fmt.Errorf("source: %w", err)
		}
		buf.WriteByte('}')
		return nil
	default:
		return fmt.Errorf("unsupported diagram variant: %T", d)
	}
}

func (e *canonicalEncoder) encodeRewrite(buf *bytes.Buffer, r Rewrite) error {
	switch v := r.(type) {
	case *RewriteZero:
		buf.WriteString(`{"dimension":0,"source":`)
		if err := e.encodeGenerator(buf, v.Source); err != nil {
			return err
		}
		buf.WriteString(`,"target":`)
		if err := e.encodeGenerator(buf, v.Target); err != nil {
			return err
		}
		buf.WriteByte('}')
		return nil
	case *RewriteIdentity:
		buf.WriteString(`{"dimension":1,"identity":true}`)
		return nil
	case *RewriteN:
		buf.WriteString(`{"cones":[`)
		for i, cn := range v.Cones {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := e.encode(buf, cn); err != nil {
				return fmt.Errorf("cones[%d]: %w", i, err)
			}
		}
		fmt.Fprintf(buf, `],"dimension":%d}`, v.Dim)
		return nil
	default:
		return fmt.Errorf("unsupported rewrite variant: %T", r)
	}
}

func (e *canonicalEncoder) encodeCospan(buf *bytes.Buffer, c Cospan) error {
	buf.WriteString(`{"backward":`)
	if err := e.encode(buf, c.Backward); err != nil {
		return fmt.Errorf("backward: %w", err)
	}
	buf.WriteString(`,"forward":`)
	if err := e.encode(buf, c.Forward); err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	buf.WriteByte('}')
	return nil
}

func (e *canonicalEncoder) encodeCone(buf *bytes.Buffer, c Cone) error {
	fmt.Fprintf(buf, `{"index":%d,"slices":[`, c.Index)
	for i, sl := range c.Slices {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := e.encode(buf, sl); err != nil {
			return fmt.Errorf("slices[%d]: %w", i, err)
		}
	}
	buf.WriteString(`],"source":[`)
	for i, src := range c.Source {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := e.encode(buf, src); err != nil {
			return fmt.Errorf("source[%d]: %w", i, err)
		}
	}
	buf.WriteString(`],"target":`)
	if err := e.encode(buf, c.Target); err != nil {
		return fmt.Errorf("target: %w", err)
	}
	buf.WriteByte('}')
	return nil
}

func (e *canonicalEncoder) encodeMap(buf *bytes.Buffer, m map[string]any) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysUTF16)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodeCanonicalString(buf, k)
		buf.WriteByte(':')
		if err := e.encode(buf, m[k]); err != nil {
			return fmt.Errorf("value for key %q: %w", k, err)
		}
	}
	buf.WriteByte('}')
	return nil
}

// encodeCanonicalString writes an NFC-normalized JSON string without HTML
// escaping. Only control characters (U+0000..U+001F), the backslash, and
// the quote are escaped, per RFC 8785.
func encodeCanonicalString(buf *bytes.Buffer, s string) {
	s = norm.NFC.String(s)
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

// compareKeysUTF16 compares strings by UTF-16 code units as required by
// RFC 8785. Go's native string comparison is UTF-8 byte order, which
// disagrees with UTF-16 order for keys beyond the BMP.
func compareKeysUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	n := min(len(a16), len(b16))
	for i := 0; i < n; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a16) < len(b16):
		return -1
	case len(a16) > len(b16):
		return 1
	default:
		return 0
	}
}
