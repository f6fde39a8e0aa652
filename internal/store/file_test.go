package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/store"
	"github.com/ayoisaiah/worktime/internal/testutil"
)

type saveTest struct {
	Ledger     *ledger.Ledger
	Name       string
	GoldenFile string
	Snapshot   []byte
}

func (t saveTest) Output() (out []byte, name string) {
	return t.Snapshot, t.GoldenFile
}

func openEnded(date string, start, duration uint64) ledger.Session {
	return ledger.Session{
		Date:     date,
		Start:    start,
		Duration: duration,
	}
}

func sampleLedger() *ledger.Ledger {
	l := ledger.New()
	l.AddSession(ledger.NewSession("2024-01-01", 1704067200, 1704067300, 100))
	l.AddSession(openEnded("2024-01-01", 1704070000, 500))
	l.AddSession(ledger.NewSession("2024-01-02", 1704153600, 1704153650, 50))

	return l
}

func TestFileSave(t *testing.T) {
	testCases := []saveTest{
		{
			Name:       "sessions are written in order after the total",
			GoldenFile: "three_sessions",
			Ledger:     sampleLedger(),
		},
		{
			Name:       "empty ledger writes only the total",
			GoldenFile: "empty_ledger",
			Ledger:     ledger.New(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.txt")

			require.NoError(t, store.NewFile(path).Save(tc.Ledger))

			tc.Snapshot = testutil.ReadFile(t, path)

			testutil.CompareGoldenFile(t, tc)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	f := store.NewFile(path)

	want := sampleLedger()

	require.NoError(t, f.Save(want))

	got := f.Load()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ledger mismatch (-want +got):\n%s", diff)
	}
}

func TestFileSaveOverwrites(t *testing.T) {
	path := testutil.WriteFile(
		t,
		"data.txt",
		"TOTAL_SECONDS=99999\nSESSION|2020-01-01|1|2|3\nSESSION|2020-01-01|4|5|6\n",
	)

	l := ledger.New()
	l.AddSession(ledger.NewSession("2024-01-01", 10, 20, 10))

	require.NoError(t, store.NewFile(path).Save(l))

	assert.Equal(
		t,
		"TOTAL_SECONDS=10\nSESSION|2024-01-01|10|20|10\n",
		string(testutil.ReadFile(t, path)),
	)
}

func TestFileSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "worktime-data.txt")

	require.NoError(t, store.NewFile(path).Save(sampleLedger()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestFileSaveFailure(t *testing.T) {
	// a directory cannot be written over as a file
	path := t.TempDir()

	err := store.NewFile(path).Save(sampleLedger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestFileLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	l := store.NewFile(path).Load()

	assert.Equal(t, ledger.New(), l)
}

func TestFileLoadMalformedLines(t *testing.T) {
	valid := []string{
		"SESSION|2024-01-01|1000|1100|100",
		"SESSION|2024-01-01|2000|0|500",
		"SESSION|2024-01-02|3000|3050|50",
	}

	malformed := []string{
		"SESSION|2024-01-01|1000|1100",
		"SESSION|2024-01-01|abc|1100|100",
		"SESSION|2024-01-01|1000|1100|-5",
		"SESSION|2024-01-01|1000|1100|100|7",
		"SESSION|",
		"garbage",
		"",
	}

	layouts := map[string][]string{
		"malformed first": append(append([]string{}, malformed...), valid...),
		"malformed last":  append(append([]string{}, valid...), malformed...),
		"interleaved": {
			malformed[0], valid[0], malformed[1], malformed[2],
			valid[1], malformed[3], malformed[4], valid[2], malformed[5],
		},
		"no malformed": valid,
	}

	for name, lines := range layouts {
		t.Run(name, func(t *testing.T) {
			content := "TOTAL_SECONDS=650\n" + strings.Join(lines, "\n") + "\n"

			l := store.Decode(strings.NewReader(content))

			require.Len(t, l.Sessions, len(valid))
			assert.Equal(t, uint64(650), l.Total)

			for i, line := range valid {
				assert.Equal(t, line, store.FormatSession(l.Sessions[i]))
			}
		})
	}
}

func TestFileLoadSkipsOversizedLine(t *testing.T) {
	content := strings.Join([]string{
		"TOTAL_SECONDS=150",
		"SESSION|2024-01-01|1000|1100|100",
		"#" + strings.Repeat("x", 70*1024),
		"SESSION|2024-01-02|3000|3050|50",
	}, "\n") + "\n"

	path := testutil.WriteFile(t, "worktime-data.txt", content)
	f := store.NewFile(path)

	l := f.Load()

	require.Len(t, l.Sessions, 2)
	assert.Equal(t, "2024-01-02", l.Sessions[1].Date)
	assert.Equal(t, uint64(150), l.Total)

	l.AddSession(ledger.NewSession("2024-01-03", 5000, 5010, 10))
	require.NoError(t, f.Save(l))

	saved := string(testutil.ReadFile(t, path))
	assert.Contains(t, saved, "SESSION|2024-01-01|1000|1100|100\n")
	assert.Contains(t, saved, "SESSION|2024-01-02|3000|3050|50\n")
	assert.Contains(t, saved, "SESSION|2024-01-03|5000|5010|10\n")
	assert.True(t, strings.HasPrefix(saved, "TOTAL_SECONDS=160\n"))
}

func TestDecodeTotal(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
		Want    uint64
	}{
		{
			Name:    "valid total",
			Content: "TOTAL_SECONDS=42\n",
			Want:    42,
		},
		{
			Name:    "non numeric total defaults to zero",
			Content: "TOTAL_SECONDS=forty\nSESSION|2024-01-01|1|2|3\n",
			Want:    0,
		},
		{
			Name:    "missing total defaults to zero",
			Content: "SESSION|2024-01-01|1|2|3\n",
			Want:    0,
		},
		{
			Name:    "stored total is kept even when sessions disagree",
			Content: "TOTAL_SECONDS=1000\nSESSION|2024-01-01|1|2|3\n",
			Want:    1000,
		},
		{
			Name:    "windows line endings",
			Content: "TOTAL_SECONDS=3\r\nSESSION|2024-01-01|1|2|3\r\n",
			Want:    3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			l := store.Decode(strings.NewReader(tc.Content))

			assert.Equal(t, tc.Want, l.Total)
		})
	}
}

func TestParseSession(t *testing.T) {
	end := uint64(1100)

	testCases := []struct {
		Name string
		Line string
		Want ledger.Session
		OK   bool
	}{
		{
			Name: "zero end decodes as no end",
			Line: "SESSION|2024-01-01|1000|0|500",
			Want: ledger.Session{Date: "2024-01-01", Start: 1000, Duration: 500},
			OK:   true,
		},
		{
			Name: "complete session",
			Line: "SESSION|2024-01-01|1000|1100|100",
			Want: ledger.Session{
				Date:     "2024-01-01",
				Start:    1000,
				End:      &end,
				Duration: 100,
			},
			OK: true,
		},
		{
			Name: "one field short",
			Line: "SESSION|2024-01-01|1000|500",
		},
		{
			Name: "one field too many",
			Line: "SESSION|2024-01-01|1000|0|500|1",
		},
		{
			Name: "non numeric start",
			Line: "SESSION|2024-01-01|x|0|500",
		},
		{
			Name: "non numeric end",
			Line: "SESSION|2024-01-01|1000|y|500",
		},
		{
			Name: "negative duration",
			Line: "SESSION|2024-01-01|1000|0|-1",
		},
		{
			Name: "wrong tag",
			Line: "SESSIONS|2024-01-01|1000|0|500",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got, ok := store.ParseSession(tc.Line)

			assert.Equal(t, tc.OK, ok)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(store.BackendText, filepath.Join(dir, "data.txt"))
	require.NoError(t, err)
	assert.IsType(t, &store.File{}, s)
	assert.NoError(t, s.Close())

	b, err := store.Open(store.BackendBolt, filepath.Join(dir, "data.db"))
	require.NoError(t, err)
	assert.IsType(t, &store.Bolt{}, b)
	assert.NoError(t, b.Close())

	_, err = store.Open("csv", filepath.Join(dir, "data.csv"))
	assert.ErrorContains(t, err, `unknown storage backend: "csv"`)
}
