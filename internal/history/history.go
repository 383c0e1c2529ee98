// Package history decodes zsh extended-history logs into command records.
//
// Each entry in the log has the form
//
//	: <epoch seconds>:<elapsed>;<command>
//
// and a command spanning several lines is written with a trailing backslash
// on every line but the last.
package history

import (
	"database/sql"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Record is a single command invocation extracted from the log.
type Record struct {
	// Time is invalid when the entry carried no parsable timestamp.
	Time    sql.NullTime
	Command string
}

// entryPattern matches one logical line. (?s) lets the command body span
// embedded newlines, and without (?m) "$" only anchors at the very end.
var entryPattern = regexp.MustCompile(`(?s)^: (\d+):[0-9.]+;(.*)$`)

// Decode turns raw history text into records, preserving log order.
// It never fails: malformed lines are dropped.
func Decode(raw string) []Record {
	lines := LogicalLines(raw)
	records := make([]Record, 0, len(lines))
	for _, line := range lines {
		record := ParseLine(line)
		if record.Command == "" {
			continue
		}
		records = append(records, record)
	}
	return records
}

// LogicalLines splits raw text on "\n" and merges continuation lines. A line
// ending in a backslash absorbs the following physical line, joined by a
// newline with the backslash kept in place.
func LogicalLines(raw string) []string {
	physical := strings.Split(raw, "\n")

	logical := make([]string, 0, len(physical))
	current := physical[0]
	for _, line := range physical[1:] {
		if strings.HasSuffix(current, `\`) {
			current = current + "\n" + line
			continue
		}
		logical = append(logical, current)
		current = line
	}
	return append(logical, current)
}

// ParseLine parses one logical line. A line that does not look like an
// extended-history entry yields a Record with an empty command.
func ParseLine(line string) Record {
	match := entryPattern.FindStringSubmatch(line)
	if match == nil {
		return Record{}
	}

	record := Record{Command: match[2]}
	seconds, err := strconv.ParseInt(match[1], 10, 64)
	if err == nil {
		record.Time = sql.NullTime{Time: time.Unix(seconds, 0).UTC(), Valid: true}
	}
	return record
}

// Encode writes a record back in extended-history form. The elapsed field is
// always zero and sub-second precision is lost.
func Encode(record Record) string {
	var seconds int64
	if record.Time.Valid {
		seconds = record.Time.Time.Unix()
	}
	return ": " + strconv.FormatInt(seconds, 10) + ":0;" + record.Command
}
