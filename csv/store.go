// Package csv provides a rathaus.MunicipalityStore backed by a CSV file.
//
// The file is the interchange format of the whole pipeline: it is re-read
// before and rewritten in full (header plus every row) after each update,
// so a killed process leaves a valid table behind. Columns the store does
// not know about are preserved verbatim. The design assumes exactly one
// writer process.
package csv

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/rathaus"
)

// Canonical column names. Contact columns are appended to the header in
// this order when the file predates them.
const (
	ColName        = "Gemeinde"
	ColPopulation  = "Einwohner"
	ColWebsite     = "Website"
	ColContactName = "Contact Name"
	ColEmail       = "Email"
	ColPhone       = "Phone"
	ColEmailStatus = "Email Status"
	ColNotes       = "Notes"
)

var contactColumns = []string{ColContactName, ColEmail, ColPhone, ColEmailStatus, ColNotes}

// Ensure Store implements rathaus.MunicipalityStore at compile time.
var _ rathaus.MunicipalityStore = (*Store)(nil)

// Store persists municipality rows in a CSV file.
type Store struct {
	path string
}

// NewStore creates a Store for the CSV file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// table is the raw file content: header plus rows, with a column index.
type table struct {
	header []string
	rows   [][]string
	index  map[string]int
}

func (t *table) col(row []string, name string) string {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (t *table) setCol(row []string, name, value string) {
	if i, ok := t.index[name]; ok && i < len(row) {
		row[i] = value
	}
}

// ensureColumns appends any missing canonical contact columns to the
// header and pads every row accordingly.
func (t *table) ensureColumns(names ...string) {
	for _, name := range names {
		if _, ok := t.index[name]; ok {
			continue
		}
		t.index[name] = len(t.header)
		t.header = append(t.header, name)
		for i := range t.rows {
			t.rows[i] = append(t.rows[i], "")
		}
	}
}

// Load returns all rows in table order.
func (s *Store) Load(_ context.Context) ([]*rathaus.Municipality, error) {
	t, err := s.read()
	if err != nil {
		return nil, err
	}

	ms := make([]*rathaus.Municipality, 0, len(t.rows))
	for _, row := range t.rows {
		ms = append(ms, &rathaus.Municipality{
			Name:        t.col(row, ColName),
			Population:  t.col(row, ColPopulation),
			Website:     t.col(row, ColWebsite),
			ContactName: t.col(row, ColContactName),
			Email:       t.col(row, ColEmail),
			Phone:       t.col(row, ColPhone),
			EmailStatus: t.col(row, ColEmailStatus),
			Notes:       t.col(row, ColNotes),
		})
	}
	return ms, nil
}

// UpdateWebsite sets the Website field of the row with the given name and
// rewrites the file. Returns ENOTFOUND if no row matches.
func (s *Store) UpdateWebsite(_ context.Context, name, website string) error {
	t, err := s.read()
	if err != nil {
		return err
	}

	found := false
	for _, row := range t.rows {
		if t.col(row, ColName) == name {
			t.setCol(row, ColWebsite, website)
			found = true
		}
	}
	if !found {
		return rathaus.Errorf(rathaus.ENOTFOUND, "municipality %q not found in %s", name, s.path)
	}

	return s.write(t)
}

// UpdateContact sets the contact fields of every row whose Website equals
// the given URL and rewrites the file. Contact columns are added to the
// header if the file predates them. Returns ENOTFOUND if no row matches.
func (s *Store) UpdateContact(_ context.Context, website string, contact rathaus.Contact) error {
	t, err := s.read()
	if err != nil {
		return err
	}
	t.ensureColumns(contactColumns...)

	found := false
	for _, row := range t.rows {
		if t.col(row, ColWebsite) == website {
			t.setCol(row, ColContactName, contact.Name)
			t.setCol(row, ColEmail, contact.Email)
			t.setCol(row, ColPhone, contact.Phone)
			found = true
		}
	}
	if !found {
		return rathaus.Errorf(rathaus.ENOTFOUND, "website %q not found in %s", website, s.path)
	}

	return s.write(t)
}

func (s *Store) read() (*table, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, rathaus.Errorf(rathaus.ENOTFOUND, "open %s: %v", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, rathaus.Errorf(rathaus.EINVALID, "read header of %s: %v", s.path, err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	if _, ok := index[ColName]; !ok {
		return nil, rathaus.Errorf(rathaus.EINVALID, "missing required column %q in %s", ColName, s.path)
	}
	if _, ok := index[ColWebsite]; !ok {
		return nil, rathaus.Errorf(rathaus.EINVALID, "missing required column %q in %s", ColWebsite, s.path)
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rathaus.Errorf(rathaus.EINVALID, "read row of %s: %v", s.path, err)
		}
		// Pad short rows so known columns are always addressable.
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		rows = append(rows, rec)
	}

	return &table{header: header, rows: rows, index: index}, nil
}

// write rewrites the whole file through a temp file and rename so a crash
// mid-write cannot truncate the table.
func (s *Store) write(t *table) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return rathaus.Errorf(rathaus.EINTERNAL, "create temp file: %v", err)
	}
	tmpName := tmp.Name()

	w := csv.NewWriter(tmp)
	if err := w.Write(t.header); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return rathaus.Errorf(rathaus.EINTERNAL, "write header: %v", err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return rathaus.Errorf(rathaus.EINTERNAL, "write rows: %v", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return rathaus.Errorf(rathaus.EINTERNAL, "flush %s: %v", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return rathaus.Errorf(rathaus.EINTERNAL, "close %s: %v", tmpName, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return rathaus.Errorf(rathaus.EINTERNAL, "rename %s: %v", tmpName, err)
	}
	return nil
}
