package logs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const (
	scanBufferSize  = 64 * 1024
	maxLineSize     = 1024 * 1024
	defaultPollRate = 250 * time.Millisecond
)

// Filter selects log lines. A zero Filter keeps every line.
type Filter struct {
	// Contains keeps only lines holding this substring, such as a batch id
	// prefix.
	Contains string
}

func (f Filter) keep(line string) bool {
	return f.Contains == "" || strings.Contains(line, f.Contains)
}

// Last returns up to limit trailing lines of path that pass filter, plus the
// file size to resume following from. A missing file yields no lines.
func Last(path string, limit int, filter Filter) ([]string, int64, error) {
	file, err := openLog(path)
	if err != nil || file == nil {
		return nil, 0, err
	}
	defer file.Close()

	if limit <= 0 {
		end, err := file.Seek(0, io.SeekEnd)
		if err != nil {
			return nil, 0, fmt.Errorf("seek log file: %w", err)
		}
		return nil, end, nil
	}

	ring := make([]string, limit)
	count, next := 0, 0
	end, err := scanLines(file, func(line string) error {
		if !filter.keep(line) {
			return nil
		}
		ring[next] = line
		next = (next + 1) % limit
		if count < limit {
			count++
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	lines := make([]string, count)
	if count == limit {
		for i := range count {
			lines[i] = ring[(next+i)%limit]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, end, nil
}

// Follow emits lines appended to path after offset until ctx is done or emit
// fails. A file that shrank is reread from the start. The context error is
// not reported.
func Follow(ctx context.Context, path string, offset int64, filter Filter, poll time.Duration, emit func(string) error) error {
	if poll <= 0 {
		poll = defaultPollRate
	}
	ticker := time.NewTicker(poll)
	defer ticker.Stop()

	for {
		next, err := readFrom(path, offset, filter, emit)
		if err != nil {
			return err
		}
		offset = next

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func readFrom(path string, offset int64, filter Filter, emit func(string) error) (int64, error) {
	file, err := openLog(path)
	if err != nil || file == nil {
		return 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return offset, fmt.Errorf("stat log file: %w", err)
	}
	if offset < 0 || offset > info.Size() {
		offset = 0
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return offset, fmt.Errorf("seek log file: %w", err)
	}
	return scanLines(file, func(line string) error {
		if !filter.keep(line) {
			return nil
		}
		return emit(line)
	})
}

// scanLines feeds every complete line from the current position to fn and
// returns the offset after the last complete line. A trailing partial line is
// left for the next read.
func scanLines(file *os.File, fn func(string) error) (int64, error) {
	start, err := file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("determine log offset: %w", err)
	}
	reader := bufio.NewReaderSize(file, scanBufferSize)
	offset := start
	for {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) {
			return offset, nil
		}
		if err != nil {
			return offset, fmt.Errorf("read log file: %w", err)
		}
		offset += int64(len(line))
		line = strings.TrimRight(line, "\r\n")
		if len(line) > maxLineSize {
			line = line[:maxLineSize]
		}
		if err := fn(line); err != nil {
			return offset, err
		}
	}
}

func openLog(path string) (*os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log file: %w", err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("stat log file: %w", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, fmt.Errorf("log path %q is a directory", path)
	}
	return file, nil
}
