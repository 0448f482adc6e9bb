package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Store owns the ordered transaction sequence and mirrors it to one CSV file.
// It is not safe for concurrent use; two processes sharing a file are
// last-writer-wins.
type Store struct {
	path  string
	txns  []model.Transaction
	log   zerolog.Logger
	stale bool // backing file exists but could not be parsed
}

// Open creates a Store for path and loads it. A missing or malformed file
// leaves the store empty; the cause is logged, never returned.
func Open(path string, logger zerolog.Logger) *Store {
	s := New(path, logger)
	if err := s.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Str("path", path).Msg("ledger file not found, starting empty")
		} else {
			s.log.Warn().Err(err).Str("path", path).Msg("ledger file unreadable, starting empty")
		}
	}
	return s
}

// New creates an empty Store for path without reading it.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, log: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of transactions.
func (s *Store) Len() int {
	return len(s.txns)
}

// Load replaces the sequence with the contents of the backing file.
// Any failure empties the sequence and returns a *ReadError; the store
// remains fully usable either way.
func (s *Store) Load() error {
	s.txns = nil
	s.stale = false

	f, err := os.Open(s.path)
	if err != nil {
		return &ReadError{Path: s.path, Err: err}
	}
	defer f.Close()

	if info, err := f.Stat(); err != nil {
		return &ReadError{Path: s.path, Err: err}
	} else if info.IsDir() {
		return &ReadError{Path: s.path, Err: fmt.Errorf("%s is a directory", s.path)}
	}

	txns, err := ReadTransactions(f)
	if err != nil {
		s.stale = true
		return &ReadError{Path: s.path, Err: err}
	}

	s.txns = txns
	s.log.Debug().Int("count", len(txns)).Str("path", s.path).Msg("ledger loaded")
	return nil
}

// Add validates txn, appends it and persists the ledger. The date is
// truncated to its calendar day. It returns the index of the new transaction.
func (s *Store) Add(txn model.Transaction) (int, error) {
	if err := txn.Validate(); err != nil {
		return 0, &ValidationError{Err: err}
	}
	// The file stores calendar dates only.
	txn.Date = model.Day(txn.Date)

	s.txns = append(s.txns, txn)
	idx := len(s.txns) - 1

	if err := s.Persist(); err != nil {
		return idx, err
	}

	s.log.Info().
		Int("index", idx).
		Str("type", string(txn.Type)).
		Str("amount", txn.Amount.String()).
		Str("category", txn.Category).
		Msg("transaction added")
	return idx, nil
}

// AddAll validates every transaction, appends them in order and persists
// once. Nothing is appended if any transaction is invalid. It returns the
// index of the first appended transaction.
func (s *Store) AddAll(txns []model.Transaction) (int, error) {
	for i, txn := range txns {
		if err := txn.Validate(); err != nil {
			return 0, &ValidationError{Err: fmt.Errorf("transaction %d: %w", i, err)}
		}
	}

	first := len(s.txns)
	for _, txn := range txns {
		txn.Date = model.Day(txn.Date)
		s.txns = append(s.txns, txn)
	}

	if err := s.Persist(); err != nil {
		return first, err
	}

	s.log.Info().Int("count", len(txns)).Int("first", first).Msg("transactions added")
	return first, nil
}

// Delete removes the transaction at index, shifting later ones down, and
// persists the ledger. It returns the removed transaction.
func (s *Store) Delete(index int) (model.Transaction, error) {
	if index < 0 || index >= len(s.txns) {
		return model.Transaction{}, &IndexError{Index: index, Len: len(s.txns)}
	}

	removed := s.txns[index]
	s.txns = slices.Delete(s.txns, index, index+1)

	if err := s.Persist(); err != nil {
		return removed, err
	}

	s.log.Info().Int("index", index).Int("remaining", len(s.txns)).Msg("transaction deleted")
	return removed, nil
}

// Snapshot returns an independent copy of the sequence.
func (s *Store) Snapshot() []model.Transaction {
	return slices.Clone(s.txns)
}

// Export renders the sequence in the ledger file format.
func (s *Store) Export() ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTransactions(&buf, s.txns); err != nil {
		return nil, fmt.Errorf("exporting ledger: %w", err)
	}
	return buf.Bytes(), nil
}

// Persist writes the full sequence to a temporary file next to the ledger
// and renames it into place, so readers never see a partial file.
func (s *Store) Persist() error {
	data, err := s.Export()
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("creating ledger dir: %w", err)}
	}

	if s.stale {
		// Keep the unparseable file instead of overwriting it.
		aside := asidePath(s.path)
		if err := os.Rename(s.path, aside); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return &WriteError{Path: s.path, Err: fmt.Errorf("moving unreadable ledger aside: %w", err)}
		}
		s.log.Warn().Str("path", aside).Msg("unreadable ledger moved aside")
		s.stale = false
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("creating temp file: %w", err)}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: fmt.Errorf("writing temp file: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: fmt.Errorf("closing temp file: %w", err)}
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: fmt.Errorf("setting permissions: %w", err)}
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return &WriteError{Path: s.path, Err: fmt.Errorf("replacing ledger: %w", err)}
	}
	return nil
}

// asidePath returns the first unused name among <path>.corrupt,
// <path>.corrupt.1, <path>.corrupt.2 and so on.
func asidePath(path string) string {
	aside := path + ".corrupt"
	for n := 1; ; n++ {
		if _, err := os.Lstat(aside); err != nil {
			return aside
		}
		aside = fmt.Sprintf("%s.corrupt.%d", path, n)
	}
}
