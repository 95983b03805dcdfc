package document

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/celledit/internal/engine"
)

func newDoc(texts ...string) *Document {
	d := New()
	for _, s := range texts {
		d.Append(engine.KindInput, s)
	}
	return d
}

func TestAppendAndIndex(t *testing.T) {
	d := newDoc("a", "b", "c")

	if d.Len() != 3 {
		t.Fatalf("expected 3 cells, got %d", d.Len())
	}
	for i, c := range d.Cells() {
		got, ok := d.Index(c.ID)
		if !ok || got != i {
			t.Errorf("expected index %d, got %d (%t)", i, got, ok)
		}
	}
	if d.At(1).Engine.Text() != "b" {
		t.Errorf("expected text b, got %q", d.At(1).Engine.Text())
	}
	if d.At(3) != nil || d.At(-1) != nil {
		t.Error("out of range index should return nil")
	}
}

func TestCellIDsAreUnique(t *testing.T) {
	d := newDoc("a", "b")
	if d.At(0).ID == d.At(1).ID {
		t.Error("cells should have distinct handles")
	}
}

func TestInsertAfter(t *testing.T) {
	d := newDoc("a", "c")
	first := d.At(0)

	c, err := d.InsertAfter(first.ID, engine.KindComment, "b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.At(1) != c {
		t.Error("inserted cell should be at index 1")
	}
	if c.Kind() != engine.KindComment {
		t.Errorf("expected comment kind, got %s", c.Kind())
	}

	if _, err := d.InsertAfter(uuid.New(), engine.KindInput, ""); !errors.Is(err, ErrCellNotFound) {
		t.Errorf("expected ErrCellNotFound, got %v", err)
	}
}

func TestInsertBeforeActiveKeepsActive(t *testing.T) {
	d := newDoc("a", "b")
	active := d.At(1)
	if err := d.Activate(active.ID); err != nil {
		t.Fatal(err)
	}

	if _, err := d.InsertAfter(d.At(0).ID, engine.KindInput, "x"); err != nil {
		t.Fatal(err)
	}
	if d.Active() != active {
		t.Error("active cell should not change when a cell is inserted before it")
	}
}

func TestRemove(t *testing.T) {
	d := newDoc("a", "b", "c")
	last := d.At(2)
	if err := d.Activate(last.ID); err != nil {
		t.Fatal(err)
	}

	if err := d.Remove(last.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Errorf("expected 2 cells, got %d", d.Len())
	}
	if d.Active() != d.At(1) {
		t.Error("removing the last active cell should activate its predecessor")
	}
	if _, ok := d.Get(last.ID); ok {
		t.Error("removed cell should not be found")
	}
	if err := d.Remove(last.ID); !errors.Is(err, ErrCellNotFound) {
		t.Errorf("expected ErrCellNotFound, got %v", err)
	}
}

func TestRemoveBeforeActive(t *testing.T) {
	d := newDoc("a", "b", "c")
	active := d.At(2)
	_ = d.Activate(active.ID)

	if err := d.Remove(d.At(0).ID); err != nil {
		t.Fatal(err)
	}
	if d.Active() != active {
		t.Error("active cell should follow its index shift")
	}
}

func TestActivateResetsPreviousMarks(t *testing.T) {
	d := newDoc("f(x)", "y")
	first := d.At(0)
	_ = d.Activate(first.ID)

	first.Engine.Apply(engine.SelectRange{From: 0, To: 2})
	if !first.Engine.HasSelection() {
		t.Fatal("expected a selection")
	}

	if err := d.Activate(d.At(1).ID); err != nil {
		t.Fatal(err)
	}
	if first.Engine.HasSelection() {
		t.Error("leaving a cell should clear its selection")
	}
	if first.Engine.Match().Found() {
		t.Error("leaving a cell should clear its bracket match")
	}

	if err := d.Activate(uuid.New()); !errors.Is(err, ErrCellNotFound) {
		t.Errorf("expected ErrCellNotFound, got %v", err)
	}
}

func TestNextPrev(t *testing.T) {
	d := newDoc("a", "b", "c")

	if c, ok := d.Next(); !ok || c != d.At(0) {
		t.Error("Next with no active cell should activate the first cell")
	}
	if c, ok := d.Next(); !ok || c != d.At(1) {
		t.Error("expected second cell")
	}
	d.Next()
	if c, ok := d.Next(); ok || c != d.At(2) {
		t.Error("Next on the last cell should stay put")
	}
	if c, ok := d.Prev(); !ok || c != d.At(1) {
		t.Error("expected second cell")
	}

	d.Deactivate()
	if d.Active() != nil {
		t.Error("expected no active cell")
	}
	if c, ok := d.Prev(); !ok || c != d.At(2) {
		t.Error("Prev with no active cell should activate the last cell")
	}
}

func TestNextPrevEmpty(t *testing.T) {
	d := New()
	if _, ok := d.Next(); ok {
		t.Error("Next on empty document should fail")
	}
	if _, ok := d.Prev(); ok {
		t.Error("Prev on empty document should fail")
	}
}

func TestConfigure(t *testing.T) {
	d := newDoc("a")
	d.Configure(engine.WithTabWidth(2))

	if d.At(0).Engine.TabWidth() != 2 {
		t.Errorf("expected tab width 2, got %d", d.At(0).Engine.TabWidth())
	}
	c := d.Append(engine.KindInput, "")
	if c.Engine.TabWidth() != 2 {
		t.Errorf("new cells should inherit tab width 2, got %d", c.Engine.TabWidth())
	}
}

func TestIsModified(t *testing.T) {
	d := newDoc("a")
	if !d.IsModified() {
		t.Error("new cells should mark the document modified")
	}

	d.MarkSaved()
	if d.IsModified() {
		t.Error("document should be clean after MarkSaved")
	}

	c := d.At(0)
	c.Engine.Apply(engine.MoveCaret{Direction: engine.Right})
	if d.IsModified() {
		t.Error("caret movement should not modify the document")
	}

	c.Engine.Apply(engine.InsertChar{Char: 'b'})
	if !d.IsModified() {
		t.Error("text change should modify the document")
	}
}

// File Tests

func TestReadWrite(t *testing.T) {
	src := `cells:
  - kind: title
    text: Notes
  - kind: input
    text: |-
      x = f(1);
      y = 2;
`
	d, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 cells, got %d", d.Len())
	}
	if d.At(0).Kind() != engine.KindTitle {
		t.Errorf("expected title kind, got %s", d.At(0).Kind())
	}
	if d.At(1).Engine.Text() != "x = f(1);\ny = 2;" {
		t.Errorf("unexpected text %q", d.At(1).Engine.Text())
	}
	if d.IsModified() {
		t.Error("freshly read document should be clean")
	}

	var buf bytes.Buffer
	if err := d.Write(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := Read(&buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.Len() != 2 || again.At(1).Engine.Text() != d.At(1).Engine.Text() {
		t.Error("written document should read back the same cells")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown kind", "cells:\n  - kind: code\n    text: x\n"},
		{"unknown field", "cells:\n  - kind: input\n    body: x\n"},
		{"malformed", "cells: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestReadEmpty(t *testing.T) {
	d, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Len() != 0 {
		t.Errorf("expected no cells, got %d", d.Len())
	}
}

func TestOpenSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.yaml")

	d, err := Open(path)
	if err != nil {
		t.Fatalf("missing file should open empty: %v", err)
	}
	if d.Path != path || d.Len() != 0 {
		t.Fatalf("unexpected document %+v", d)
	}

	d.Append(engine.KindInput, "a;")
	if err := d.Save(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.IsModified() {
		t.Error("document should be clean after Save")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "kind: input") {
		t.Errorf("unexpected file contents %q", data)
	}

	re, err := Open(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re.Len() != 1 || re.At(0).Engine.Text() != "a;" {
		t.Error("reopened document should contain the saved cell")
	}
}

func TestSaveWithoutPath(t *testing.T) {
	if err := New().Save(); err == nil {
		t.Error("expected an error saving a document without a path")
	}
}
