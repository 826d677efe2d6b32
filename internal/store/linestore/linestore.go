package linestore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/idilsaglam/situs/internal/model"
)

// Pipe-delimited storage. One ingredient per line:
//
//	name|amount|units|dd/mm/yyyy
//
// Legacy files without the units column are still read.
// No locking; a single local process owns the file.

const (
	DefaultPath = "data/ingredients.txt"

	sep            = model.Separator
	canonicalCount = 4
	legacyCount    = 3

	// Longer lines are skipped rather than decoded.
	maxLineBytes = 64 << 10
)

// ErrSeparator is returned by Save for a name or unit that holds the field
// separator. Such a record could not be read back.
var ErrSeparator = errors.New("value contains the field separator " + sep)

type Store struct {
	path string
	log  logrus.FieldLogger
}

// New makes sure the parent directory and the file exist.
func New(path string, log logrus.FieldLogger) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("create data file: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("close data file: %w", err)
	}
	return &Store{path: path, log: log}, nil
}

func (s *Store) Path() string { return s.path }

// Load never fails: an unreadable file gives an empty collection and bad
// lines are skipped, both with a warning.
func (s *Store) Load() []model.Ingredient {
	items := []model.Ingredient{}
	f, err := os.Open(s.path)
	if err != nil {
		s.log.WithError(err).WithField("path", s.path).Warn("cannot open the saved data file")
		return items
	}
	defer f.Close()

	r := bufio.NewReader(f)
	lineNo := 0
	for {
		line, readErr := r.ReadString('\n')
		if line != "" {
			lineNo++
			if ing, ok := s.decode(strings.TrimRight(line, "\r\n"), lineNo); ok {
				items = append(items, ing)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			s.log.WithError(readErr).WithField("path", s.path).Warn("stopped reading data file")
			break
		}
	}
	s.log.WithField("count", len(items)).Debug("ingredients loaded")
	return items
}

func (s *Store) decode(line string, lineNo int) (model.Ingredient, bool) {
	if strings.TrimSpace(line) == "" {
		return model.Ingredient{}, false
	}
	var (
		ing model.Ingredient
		err error
	)
	if len(line) > maxLineBytes {
		err = fmt.Errorf("line is %d bytes, limit is %d", len(line), maxLineBytes)
	} else {
		ing, err = DecodeLine(line)
	}
	if err != nil {
		s.log.WithFields(logrus.Fields{"path": s.path, "line": lineNo}).
			WithError(err).Warn("skipping stored ingredient")
		return model.Ingredient{}, false
	}
	return ing, true
}

// Save replaces the whole file. It writes a sibling temp file first and
// renames it into place.
func (s *Store) Save(items []model.Ingredient) error {
	for _, it := range items {
		if strings.Contains(it.Name, sep) || strings.Contains(it.Units, sep) {
			return fmt.Errorf("encode %q: %w", it.Name, ErrSeparator)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, it := range items {
		if _, err := w.WriteString(EncodeLine(it) + "\n"); err != nil {
			tmp.Close()
			return fmt.Errorf("write file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	s.log.WithField("count", len(items)).Debug("ingredients saved")
	return nil
}

// EncodeLine renders the canonical 4-field record.
func EncodeLine(it model.Ingredient) string {
	return strings.Join([]string{
		it.Name,
		model.FormatAmount(it.Amount),
		it.Units,
		model.FormatDate(it.Expiry),
	}, sep)
}

// DecodeLine accepts the canonical 4-field record and the legacy
// name|amount|expiry form, which gets DefaultUnits.
func DecodeLine(line string) (model.Ingredient, error) {
	fields := strings.SplitN(line, sep, canonicalCount)
	var name, amount, units, expiry string
	switch len(fields) {
	case canonicalCount:
		name, amount, units, expiry = fields[0], fields[1], fields[2], fields[3]
	case legacyCount:
		name, amount, expiry = fields[0], fields[1], fields[2]
	default:
		return model.Ingredient{}, fmt.Errorf("expected %d or %d fields, got %d", legacyCount, canonicalCount, len(fields))
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return model.Ingredient{}, fmt.Errorf("empty ingredient name")
	}
	amt, err := model.ParseAmount(amount)
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("wrong ingredient amount format: %w", err)
	}
	exp, err := model.ParseDate(expiry)
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("wrong expiry date format: %w", err)
	}
	return model.NewIngredient(name, amt, units, exp), nil
}
