package weave

import (
	"gopkg.in/yaml.v3"
)

// Document is a serialized template call: its literal segments and the
// substitution values in slot order. A null substitution is absent.
//
//	segments: ["<p>", " ", "</p>"]
//	substitutions: ["x", null]
type Document struct {
	Segments      []string `yaml:"segments"`
	Substitutions []any    `yaml:"substitutions,omitempty"`
}

// ParseDocument decodes a YAML or JSON document. A missing segments key is
// left nil so that Interleave reports the contract violation.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewDocumentError(err)
	}
	return &doc, nil
}

// Subs converts the document's substitution values.
func (d *Document) Subs() []Substitution {
	return Substitutions(d.Substitutions...)
}

// Weave interleaves the document's segments and substitutions.
func (w *Weaver) Weave(doc *Document) (Sequence, error) {
	if doc == nil {
		return nil, NewSegmentsMissingError()
	}
	subs, err := w.substitutions(doc.Substitutions)
	if err != nil {
		return nil, err
	}
	return w.Interleave(doc.Segments, subs)
}
