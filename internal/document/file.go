package document

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/celledit/internal/engine"
)

// fileCell is the on-disk form of a cell.
type fileCell struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text"`
}

type fileDocument struct {
	Cells []fileCell `yaml:"cells"`
}

// Read decodes a YAML document:
//
//	cells:
//	  - kind: input
//	    text: |
//	      x = 1;
//
// An empty stream yields a document with no cells.
func Read(r io.Reader, opts ...engine.Option) (*Document, error) {
	var f fileDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	d := New(opts...)
	for i, fc := range f.Cells {
		kind, ok := engine.ParseKind(fc.Kind)
		if !ok {
			return nil, fmt.Errorf("cell %d: unknown kind %q", i, fc.Kind)
		}
		d.Append(kind, fc.Text)
	}
	d.MarkSaved()
	return d, nil
}

// Write encodes the document as YAML.
func (d *Document) Write(w io.Writer) error {
	f := fileDocument{Cells: make([]fileCell, 0, len(d.cells))}
	for _, c := range d.cells {
		f.Cells = append(f.Cells, fileCell{Kind: c.Kind().String(), Text: c.Engine.Text()})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	return enc.Close()
}

// Open reads the document at path. A missing file yields an empty
// document bound to path.
func Open(path string, opts ...engine.Option) (*Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			d := New(opts...)
			d.Path = path
			return d, nil
		}
		return nil, err
	}
	defer fh.Close()

	d, err := Read(fh, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	d.Path = path
	return d, nil
}

// Save writes the document to its path and marks it saved.
func (d *Document) Save() error {
	if d.Path == "" {
		return fmt.Errorf("document has no path")
	}
	fh, err := os.Create(d.Path)
	if err != nil {
		return err
	}
	if err := d.Write(fh); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return err
	}
	d.MarkSaved()
	return nil
}
