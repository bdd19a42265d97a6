package sollog

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Lookup scans a solution log for the first record with the given key
// and returns it, or ErrKeyNotFound. The scan is linear; no index is
// built, which is fine for single-shot queries.
func (e *Editor) Lookup(logPath, key string) (Record, error) {
	f, err := os.Open(logPath)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Scan() // comment line

	lineNo := 1
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.HasPrefix(line, key) {
			continue
		}
		gotKey, rec, err := e.codec.ParseRecord(line)
		if err != nil {
			return Record{}, fmt.Errorf("%s:%d: %w", logPath, lineNo, err)
		}
		if gotKey == key {
			return rec, nil
		}
	}
	if err := sc.Err(); err != nil {
		return Record{}, fmt.Errorf("failed to read %s: %w", logPath, err)
	}

	return Record{}, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}
