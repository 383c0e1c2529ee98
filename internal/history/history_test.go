package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	t.Run("decodes simple entries", func(t *testing.T) {
		records := Decode(": 1609459200:0;echo hi\n: 1609545600:0;git push origin master\n")

		require.Len(t, records, 2)
		assert.True(t, records[0].Time.Valid)
		assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Time.Time)
		assert.Equal(t, "echo hi", records[0].Command)
		assert.True(t, records[1].Time.Valid)
		assert.Equal(t, time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC), records[1].Time.Time)
		assert.Equal(t, "git push origin master", records[1].Command)
	})

	t.Run("keeps multiline commands verbatim", func(t *testing.T) {
		records := Decode(": 1:0;echo \\\nhi\n")

		require.Len(t, records, 1)
		assert.True(t, records[0].Time.Valid)
		assert.Equal(t, time.Unix(1, 0).UTC(), records[0].Time.Time)
		assert.Equal(t, "echo \\\nhi", records[0].Command)
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		records := Decode("")

		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("drops lines without a timestamp", func(t *testing.T) {
		records := Decode("echo legacy\n: 1609459200:0;ls\n\n")

		require.Len(t, records, 1)
		assert.Equal(t, "ls", records[0].Command)
	})

	t.Run("drops entries with an empty command", func(t *testing.T) {
		records := Decode(": 1609459200:0;\n: 1609459201:0;pwd")

		require.Len(t, records, 1)
		assert.Equal(t, "pwd", records[0].Command)
	})

	t.Run("discards fractional elapsed time", func(t *testing.T) {
		records := Decode(": 1609459200:12.5;make")

		require.Len(t, records, 1)
		assert.Equal(t, int64(1609459200), records[0].Time.Time.Unix())
	})

	t.Run("preserves trailing whitespace and separators in the command", func(t *testing.T) {
		records := Decode(": 1609459200:0;echo a; echo b  ")

		require.Len(t, records, 1)
		assert.Equal(t, "echo a; echo b  ", records[0].Command)
	})

	t.Run("preserves log order", func(t *testing.T) {
		records := Decode(": 30:0;c\n: 10:0;a\n: 20:0;b")

		require.Len(t, records, 3)
		assert.Equal(t, []string{"c", "a", "b"}, []string{records[0].Command, records[1].Command, records[2].Command})
	})

	t.Run("keeps command when epoch overflows", func(t *testing.T) {
		records := Decode(": 99999999999999999999:0;ls")

		require.Len(t, records, 1)
		assert.False(t, records[0].Time.Valid)
		assert.Equal(t, "ls", records[0].Command)
	})
}

func TestDecodeIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"\\",
		"\\\n\\\n",
		": ",
		": :;",
		": 1:;x",
		": a:0;x",
		";;;",
		"\x00\xff\xfe",
		": 1:0;" + string([]byte{0x83, 0xa0}),
	}

	for _, input := range inputs {
		assert.NotPanics(t, func() {
			records := Decode(input)
			assert.NotNil(t, records)
			for _, record := range records {
				assert.NotEmpty(t, record.Command)
			}
		}, "input %q", input)
	}
}

func TestLogicalLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty input", "", []string{""}},
		{"single line", "a", []string{"a"}},
		{"trailing newline", "a\n", []string{"a", ""}},
		{"plain lines", "a\nb\nc", []string{"a", "b", "c"}},
		{"continuation", "a \\\nb\nc", []string{"a \\\nb", "c"}},
		{"chained continuation", "a\\\nb\\\nc\nd", []string{"a\\\nb\\\nc", "d"}},
		{"continuation into final empty line", "a\\\n", []string{"a\\\n"}},
		{"first line empty", "\na", []string{"", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LogicalLines(tt.input))
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Run("matching line", func(t *testing.T) {
		record := ParseLine(": 1609459200:0;git status")

		assert.True(t, record.Time.Valid)
		assert.Equal(t, "git status", record.Command)
	})

	t.Run("missing leading colon", func(t *testing.T) {
		record := ParseLine("1609459200:0;git status")

		assert.False(t, record.Time.Valid)
		assert.Empty(t, record.Command)
	})

	t.Run("missing elapsed field", func(t *testing.T) {
		record := ParseLine(": 1609459200:;git status")

		assert.False(t, record.Time.Valid)
		assert.Empty(t, record.Command)
	})

	t.Run("command spans embedded newlines", func(t *testing.T) {
		record := ParseLine(": 5:0;a \\\nb \\\nc")

		assert.Equal(t, "a \\\nb \\\nc", record.Command)
	})
}

func TestEncodeRoundTrip(t *testing.T) {
	raw := ": 1609459200:7;echo hi\n: 1609545600:0.5;docker compose \\\n  up -d\n"

	for _, record := range Decode(raw) {
		again := Decode(Encode(record))

		require.Len(t, again, 1)
		assert.Equal(t, record.Command, again[0].Command)
		assert.Equal(t, record.Time.Valid, again[0].Time.Valid)
		assert.True(t, record.Time.Time.Equal(again[0].Time.Time))
	}
}

func TestEncode(t *testing.T) {
	record := mustDecode(t, ": 1609459200:3;ls")[0]

	assert.Equal(t, ": 1609459200:0;ls", Encode(record))
}

// mustDecode decodes raw and fails the test when nothing was decoded.
func mustDecode(t *testing.T, raw string) []Record {
	t.Helper()
	records := Decode(raw)
	require.NotEmpty(t, records)
	return records
}
