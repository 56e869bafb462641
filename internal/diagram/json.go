package diagram

import (
	"encoding/json"
	"fmt"
)

// JSON round-tripping for the sealed unions. Every variant carries a
// "dimension" discriminator so a persistence layer can decode values
// without knowing the concrete type up front. This is plain JSON for
// interchange; content-addressed identity must use MarshalCanonical.

// MarshalJSON emits the dimension discriminator alongside the generator.
func (d *DiagramZero) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Dimension int       `json:"dimension"`
		Generator Generator `json:"generator"`
	}{0, d.Generator})
}

// MarshalJSON emits the dimension discriminator alongside the generators.
func (r *RewriteZero) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Dimension int       `json:"dimension"`
		Source    Generator `json:"source"`
		Target    Generator `json:"target"`
	}{0, r.Source, r.Target})
}

// MarshalJSON emits the identity marker. The identity rewrite has no
// payload, so the marker is what distinguishes it from an empty object.
func (r *RewriteIdentity) MarshalJSON() ([]byte, error) {
	return []byte(`{"dimension":1,"identity":true}`), nil
}

// UnmarshalDiagram decodes a diagram from its JSON encoding, dispatching
// on the dimension discriminator. This is the primary decode API; the
// concrete types cannot be decoded directly because DiagramN.Source is an
// interface.
func UnmarshalDiagram(data []byte) (Diagram, error) {
	var raw struct {
		Dimension *int            `json:"dimension"`
		Generator *Generator      `json:"generator"`
		Source    json.RawMessage `json:"source"`
		Cospans   []Cospan        `json:"cospans"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Dimension == nil {
		return nil, fmt.Errorf("diagram: missing dimension discriminator")
	}
	switch dim := *raw.Dimension; {
	case dim == 0:
		if raw.Generator == nil {
			return nil, fmt.Errorf("diagram: dimension 0 requires a generator")
		}
		return &DiagramZero{Generator: *raw.Generator}, nil
	case dim >= 1:
		if len(raw.Source) == 0 {
			return nil, fmt.Errorf("diagram: dimension %d requires a source", dim)
		}
		source, err := UnmarshalDiagram(raw.Source)
		if err != nil {
			return nil, fmt.Errorf("diagram source: %w", err)
		}
		return &DiagramN{Dim: dim, Source: source, Cospans: raw.Cospans}, nil
	default:
		return nil, fmt.Errorf("diagram: negative dimension %d", dim)
	}
}

// UnmarshalRewrite decodes a rewrite from its JSON encoding, dispatching
// on the dimension discriminator.
func UnmarshalRewrite(data []byte) (Rewrite, error) {
	var raw struct {
		Dimension *int       `json:"dimension"`
		Source    *Generator `json:"source"`
		Target    *Generator `json:"target"`
		Cones     []Cone     `json:"cones"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Dimension == nil {
		return nil, fmt.Errorf("rewrite: missing dimension discriminator")
	}
	switch dim := *raw.Dimension; {
	case dim == 0:
		if raw.Source == nil || raw.Target == nil {
			return nil, fmt.Errorf("rewrite: dimension 0 requires source and target generators")
		}
		return &RewriteZero{Source: *raw.Source, Target: *raw.Target}, nil
	case dim == 1:
		return &RewriteIdentity{}, nil
	case dim > 1:
		return &RewriteN{Dim: dim, Cones: raw.Cones}, nil
	default:
		return nil, fmt.Errorf("rewrite: negative dimension %d", dim)
	}
}

// UnmarshalJSON decodes both legs through the rewrite discriminator.
func (c *Cospan) UnmarshalJSON(data []byte) error {
	var raw struct {
		Forward  json.RawMessage `json:"forward"`
		Backward json.RawMessage `json:"backward"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	forward, err := UnmarshalRewrite(raw.Forward)
	if err != nil {
		return fmt.Errorf("cospan forward: %w", err)
	}
	backward, err := UnmarshalRewrite(raw.Backward)
	if err != nil {
		return fmt.Errorf("cospan backward: %w", err)
	}
	c.Forward = forward
	c.Backward = backward
	return nil
}

// UnmarshalJSON decodes the cone's cospans and slice rewrites.
func (c *Cone) UnmarshalJSON(data []byte) error {
	var raw struct {
		Index  int               `json:"index"`
		Source []Cospan          `json:"source"`
		Target Cospan            `json:"target"`
		Slices []json.RawMessage `json:"slices"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	slices := make([]Rewrite, len(raw.Slices))
	for i, s := range raw.Slices {
		r, err := UnmarshalRewrite(s)
		if err != nil {
			return fmt.Errorf("cone slices[%d]: %w", i, err)
		}
		slices[i] = r
	}
	c.Index = raw.Index
	c.Source = raw.Source
	c.Target = raw.Target
	c.Slices = slices
	return nil
}
