package renderlog

import (
	"bufio"
	"fmt"
	"os"
)

// FileAccessError reports a log file that could not be opened or read.
// Parsing never produces one; it only comes out of the read stage.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("access log %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ReadLines reads the file at path fully into an ordered slice of lines.
// Trailing newlines are stripped; parsing does not depend on trailing
// whitespace. Render-tool session logs are small, so a full in-memory read
// is fine.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return lines, nil
}
