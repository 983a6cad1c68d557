// Package source provides docproject.Snapshot implementations over common
// document inputs. JSON-backed snapshots decode with goccy/go-json in
// UseNumber mode (numbers keep full precision as json.Number) and run the
// codec ingestion pass so wrapper values arrive as the tagged union.
package source

import (
	"bytes"
	"io"
	"sync"

	gojson "github.com/goccy/go-json"

	docproject "github.com/entamburini/docproject"
	"github.com/entamburini/docproject/codec"
)

// JSONBytes wraps a JSON object as a Snapshot.
func JSONBytes(b []byte) docproject.Snapshot {
	return &jsonSnapshot{r: bytes.NewReader(b)}
}

// JSONReader wraps an io.Reader producing a JSON object as a Snapshot.
// The reader is consumed on the first Data call; the decoded record is
// memoized so Data stays idempotent.
func JSONReader(r io.Reader) docproject.Snapshot {
	return &jsonSnapshot{r: r}
}

// Map wraps an already-decoded record, applying the same codec ingestion
// pass as the JSON constructors. Use docproject.SnapshotOf to skip the pass
// when the record already carries tagged union values.
func Map(doc map[string]any) docproject.Snapshot {
	return &mapSnapshot{doc: doc}
}

type jsonSnapshot struct {
	r    io.Reader
	once sync.Once
	doc  map[string]any
	err  error
}

func (s *jsonSnapshot) Data() (map[string]any, error) {
	s.once.Do(func() {
		dec := gojson.NewDecoder(s.r)
		dec.UseNumber()
		var raw map[string]any
		if err := dec.Decode(&raw); err != nil {
			s.err = err
			return
		}
		s.doc = codec.DecodeDocument(raw)
	})
	return s.doc, s.err
}

type mapSnapshot struct {
	once sync.Once
	doc  map[string]any
}

func (s *mapSnapshot) Data() (map[string]any, error) {
	s.once.Do(func() {
		s.doc = codec.DecodeDocument(s.doc)
	})
	return s.doc, nil
}
