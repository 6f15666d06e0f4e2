package sanitizes

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/sanitize/pkg/lifecycle"
)

// Table is a list of sanitizer declarations kept outside the code, for
// example in a YAML file shipped with the service:
//
//	sanitizers:
//	  - model: Post
//	    fields: [title, body]
//	  - model: Post
//	    fields: [slug]
//	    on: create
type Table struct {
	Entries []Entry `yaml:"sanitizers"`
}

// Entry declares one field set for one model.
type Entry struct {
	Model  string   `yaml:"model"`
	Fields []string `yaml:"fields"`
	On     string   `yaml:"on"`
}

// LoadTable decodes a YAML table. Unknown keys are rejected.
func LoadTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var t Table
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidTable, err)
	}
	return &t, nil
}

// Apply declares every entry on reg. models maps the names used in the table
// to a prototype value of the model, e.g. {"Post": Post{}} or
// {"Post": (*Post)(nil)}. opts apply to every entry; an entry's "on" key
// takes precedence over an On option.
//
// Apply stops at the first failing entry; entries before it stay registered.
func (t *Table) Apply(reg *lifecycle.Registry, models map[string]any, opts ...Option) ([]*Declaration, error) {
	decls := make([]*Declaration, 0, len(t.Entries))
	for i, e := range t.Entries {
		proto, ok := models[e.Model]
		if !ok {
			return decls, fmt.Errorf("entry %d: %w: %q", i, ErrUnknownModel, e.Model)
		}
		entryOpts := opts
		if e.On != "" {
			point, err := lifecycle.ParsePoint(e.On)
			if err != nil {
				return decls, fmt.Errorf("entry %d: %w", i, err)
			}
			entryOpts = append(opts[:len(opts):len(opts)], On(point))
		}
		d, err := declare(reg, lifecycle.TypeOf(proto), e.Fields, entryOpts...)
		if err != nil {
			return decls, fmt.Errorf("entry %d: %w", i, err)
		}
		decls = append(decls, d)
	}
	return decls, nil
}
