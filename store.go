package investmate

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize bounds a single record line.
const maxLineSize = 1024 * 1024

// Store is a text file holding one record per line.
//
// Every call opens the file, does its work and closes it before returning.
// Writes keep the "\r\n" terminator of a file whose first line uses it; a file
// mixing terminators is rewritten with the one of its first line.
// There is no locking: two processes writing the same file will lose updates.
type Store struct {
	path string
}

// NewStore returns the store backed by the file at path. The file is created
// on the first write.
func NewStore(path string) *Store { return &Store{path: path} }

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// LoadAll returns every non blank line of the file.
// A missing file is an empty store.
func (s *Store) LoadAll() ([]string, error) {
	var lines []string
	err := s.scan(func(line string) bool {
		lines = append(lines, line)
		return true
	})
	return lines, err
}

// Find returns the first line accepted by match.
func (s *Store) Find(match func(line string) bool) (line string, found bool, err error) {
	err = s.scan(func(l string) bool {
		if match(l) {
			line, found = l, true
			return false
		}
		return true
	})
	return line, found, err
}

// Exists reports whether any line is accepted by match.
func (s *Store) Exists(match func(line string) bool) (bool, error) {
	_, found, err := s.Find(match)
	return found, err
}

// scan calls fn for each non blank line until fn returns false.
func (s *Store) scan(fn func(line string) bool) error {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return storageError("open", s.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !fn(line) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return storageError("read", s.path, err)
	}
	return nil
}

// Append writes line at the end of the file, creating it if needed.
// A last line left without a terminator is terminated first.
func (s *Store) Append(line string) error {
	eol, last, err := s.ending()
	if err != nil {
		return err
	}
	var lead string
	if last != 0 && last != '\n' {
		lead = eol
	}
	return s.write(os.O_APPEND|os.O_CREATE|os.O_WRONLY, lead, eol, []string{line})
}

// OverwriteAll replaces the whole content of the file with lines.
// Lines end with the terminator the file used so far, "\n" for a new file.
func (s *Store) OverwriteAll(lines []string) error {
	eol, _, err := s.ending()
	if err != nil {
		return err
	}
	return s.write(os.O_TRUNC|os.O_CREATE|os.O_WRONLY, "", eol, lines)
}

// ending returns the line terminator of the file, "\r\n" when its first line
// ends that way, and its last byte, 0 for a missing or empty file.
func (s *Store) ending() (eol string, last byte, err error) {
	eol = "\n"
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return eol, 0, nil
	}
	if err != nil {
		return "", 0, storageError("open", s.path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", 0, storageError("read", s.path, err)
	}
	if info.Size() == 0 {
		return eol, 0, nil
	}
	first, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", 0, storageError("read", s.path, err)
	}
	if strings.HasSuffix(first, "\r\n") {
		eol = "\r\n"
	}
	buf := make([]byte, 1)
	if _, err := f.ReadAt(buf, info.Size()-1); err != nil {
		return "", 0, storageError("read", s.path, err)
	}
	return eol, buf[0], nil
}

func (s *Store) write(flag int, lead, eol string, lines []string) (err error) {
	// Ensure the directory for the file exists.
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return storageError("create directory for", s.path, err)
		}
	}

	f, err := os.OpenFile(s.path, flag, 0644)
	if err != nil {
		return storageError("open", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = storageError("close", s.path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	w.WriteString(lead)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteString(eol)
	}
	if err := w.Flush(); err != nil {
		return storageError("write", s.path, err)
	}
	return nil
}
