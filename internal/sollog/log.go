package sollog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Log is an in-memory solution log: a comment line plus records keyed by
// solution key. Iteration follows insertion order, and overwriting an
// existing key keeps its original position — both properties the legacy
// tooling relied on and downstream consumers observe in output files.
type Log struct {
	Comment string

	order   []string
	records map[string]Record
}

// NewLog returns an empty log with the given comment line.
func NewLog(comment string) *Log {
	return &Log{Comment: comment, records: make(map[string]Record)}
}

// Len returns the number of records.
func (l *Log) Len() int { return len(l.records) }

// Get returns the record for key, if present.
func (l *Log) Get(key string) (Record, bool) {
	rec, ok := l.records[key]
	return rec, ok
}

// Set inserts or replaces the record for key. A replaced key keeps its
// first-insertion position in iteration order.
func (l *Log) Set(key string, rec Record) {
	if _, ok := l.records[key]; !ok {
		l.order = append(l.order, key)
	}
	l.records[key] = rec
}

// Keys returns the keys in insertion order.
func (l *Log) Keys() []string {
	keys := make([]string, len(l.order))
	copy(keys, l.order)
	return keys
}

// Each calls fn for every record in insertion order, stopping at the
// first error.
func (l *Log) Each(fn func(key string, rec Record) error) error {
	for _, key := range l.order {
		if err := fn(key, l.records[key]); err != nil {
			return err
		}
	}
	return nil
}

// ReadLog materializes a solution log file. A missing file propagates the
// underlying I/O error; malformed data lines fail the whole read. Blank
// lines (the trailing newline most writers leave) are skipped.
func ReadLog(path string, c Codec) (*Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	log := NewLog("")

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return log, nil // empty file: empty comment, no records
	}
	log.Comment = sc.Text()

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, rec, err := c.ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		log.Set(key, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return log, nil
}

// WriteFile writes the log to path in the legacy layout, replacing any
// existing file.
func (l *Log) WriteFile(path string, c Codec) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, l.Comment)

	writeErr := l.Each(func(key string, rec Record) error {
		line, err := c.FormatRecord(key, rec)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, line)
		return err
	})
	if writeErr != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, writeErr)
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
