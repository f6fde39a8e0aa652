package store

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/osutil"
)

const (
	totalPrefix    = "TOTAL_SECONDS="
	sessionTag     = "SESSION"
	fieldSeparator = "|"
	sessionFields  = 5
)

// File stores the ledger as a flat text file: a TOTAL_SECONDS line followed
// by one pipe-delimited SESSION line per session.
type File struct {
	path string
}

// NewFile returns a text store at path. Nothing is touched on disk until the
// first Load or Save.
func NewFile(path string) *File {
	return &File{
		path: path,
	}
}

func (f *File) Path() string {
	return f.path
}

func (f *File) Close() error {
	return nil
}

// Load reads the ledger file. A missing or unreadable file yields an empty
// ledger.
func (f *File) Load() *ledger.Ledger {
	file, err := os.Open(f.path)
	if err != nil {
		slog.Info(
			"no existing data found, starting fresh",
			slog.String("path", f.path),
			slog.Any("reason", err),
		)

		return ledger.New()
	}

	defer file.Close()

	l := Decode(file)

	slog.Info(
		"loaded previous sessions",
		slog.String("path", f.path),
		slog.Int("count", l.Len()),
	)

	return l
}

// Save overwrites the ledger file with the encoded ledger. The parent
// directory is created if it does not exist.
func (f *File) Save(l *ledger.Ledger) error {
	var b strings.Builder

	// writes to a strings.Builder never fail
	_ = Encode(&b, l)

	if err := os.MkdirAll(filepath.Dir(f.path), osutil.DirPermission); err != nil {
		slog.Warn(
			"unable to create data directory",
			slog.String("path", f.path),
			slog.Any("error", err),
		)
	}

	err := os.WriteFile(f.path, []byte(b.String()), osutil.FilePermission)
	if err != nil {
		return errSaveLedger.Fmt(f.path).Wrap(err)
	}

	return nil
}

// Encode writes l in the text format.
func Encode(w io.Writer, l *ledger.Ledger) error {
	bw := bufio.NewWriter(w)

	_, _ = bw.WriteString(totalPrefix + strconv.FormatUint(l.Total, 10) + "\n")

	for _, s := range l.Sessions {
		_, _ = bw.WriteString(FormatSession(s) + "\n")
	}

	return bw.Flush()
}

// Decode parses the text format line by line. Lines that cannot be parsed
// are skipped and never abort the decode, whatever their length.
func Decode(r io.Reader) *ledger.Ledger {
	l := ledger.New()

	b, err := io.ReadAll(r)
	if err != nil {
		slog.Warn("ledger read stopped early", slog.Any("error", err))
	}

	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSuffix(line, "\r")

		switch {
		case strings.HasPrefix(line, totalPrefix):
			total, err := strconv.ParseUint(
				strings.TrimPrefix(line, totalPrefix),
				10,
				64,
			)
			if err != nil {
				total = 0
			}

			l.Total = total
		case strings.HasPrefix(line, sessionTag+fieldSeparator):
			s, ok := ParseSession(line)
			if !ok {
				slog.Debug("skipping malformed session", slog.String("line", line))
				continue
			}

			// the stored total is authoritative, so AddSession is not used
			l.Sessions = append(l.Sessions, s)
		}
	}

	if sum := l.Sum(); sum != l.Total {
		slog.Warn(
			"stored total does not match recorded sessions",
			slog.Uint64("total", l.Total),
			slog.Uint64("sum", sum),
		)
	}

	return l
}

// FormatSession encodes s as a SESSION line without the trailing newline.
// An absent end is written as 0.
func FormatSession(s ledger.Session) string {
	var end uint64
	if s.End != nil {
		end = *s.End
	}

	return strings.Join([]string{
		sessionTag,
		s.Date,
		strconv.FormatUint(s.Start, 10),
		strconv.FormatUint(end, 10),
		strconv.FormatUint(s.Duration, 10),
	}, fieldSeparator)
}

// ParseSession decodes a SESSION line. It reports false when the line has
// the wrong number of fields or a numeric field does not parse. An end of 0
// decodes to a session without an end.
func ParseSession(line string) (ledger.Session, bool) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != sessionFields || parts[0] != sessionTag {
		return ledger.Session{}, false
	}

	var nums [3]uint64

	for i, field := range parts[2:] {
		n, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return ledger.Session{}, false
		}

		nums[i] = n
	}

	s := ledger.Session{
		Date:     parts[1],
		Start:    nums[0],
		Duration: nums[2],
	}

	if end := nums[1]; end != 0 {
		s.End = &end
	}

	return s, true
}
