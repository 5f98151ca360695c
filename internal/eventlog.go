package internal

import (
	"bufio"
	"fmt"
	"os"
)

// maxLogLine bounds a single JSONL line; message content can be large
const maxLogLine = 1024 * 1024

// ReadEventLog reads a JSONL event log. Malformed lines are logged and
// skipped rather than failing the whole read.
func ReadEventLog(path string) ([]*Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var events []*Event
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		ev, err := ParseEvent(line)
		if err != nil {
			LogWarn("Skipping malformed event at %s:%d: %v", path, lineNo, err)
			continue
		}
		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		return nil, &SourceError{Op: "read", Path: path, Err: fmt.Errorf("line %d: %w", lineNo, err)}
	}

	return events, nil
}

// StreamEventLog reads a JSONL event log into a channel, closing it when
// the file is exhausted. Read errors past open are logged; the channel
// still closes so consumers terminate.
func StreamEventLog(path string) (<-chan *Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &SourceError{Op: "open", Path: path, Err: err}
	}

	events := make(chan *Event, 100)
	go func() {
		defer close(events)
		defer func() { _ = f.Close() }()

		scanner := bufio.NewScanner(f)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLogLine)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			ev, err := ParseEvent(line)
			if err != nil {
				LogWarn("Skipping malformed event in %s: %v", path, err)
				continue
			}
			events <- ev
		}
		if err := scanner.Err(); err != nil {
			LogError("Reading event log %s: %v", path, err)
		}
	}()

	return events, nil
}
