package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	bolt "go.etcd.io/bbolt"
	berrors "go.etcd.io/bbolt/errors"

	"github.com/ayoisaiah/worktime/internal/ledger"
	"github.com/ayoisaiah/worktime/internal/osutil"
)

const (
	sessionBucket = "sessions"
	metaBucket    = "meta"
	totalKey      = "total_seconds"
)

// Bolt stores the ledger in a BoltDB file. Sessions are kept in insertion
// order under sequence keys and the running total lives in the meta bucket.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt creates or opens the database at path and locks it.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return nil, errOpenBolt.Wrap(err)
	}

	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		path,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		// the file lock is held by another process
		if errors.Is(err, berrors.ErrTimeout) {
			return nil, errInstanceRunning
		}

		return nil, errOpenBolt.Wrap(err)
	}

	// Create the necessary buckets for storing data if they do not exist already
	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		if err != nil {
			return err
		}

		_, err = tx.CreateBucketIfNotExists([]byte(metaBucket))

		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errOpenBolt.Wrap(err)
	}

	return &Bolt{
		db: db,
	}, nil
}

func (b *Bolt) Path() string {
	return b.db.Path()
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// Load reads every stored session. Entries that fail to decode are skipped.
func (b *Bolt) Load() *ledger.Ledger {
	l := ledger.New()

	err := b.db.View(func(tx *bolt.Tx) error {
		total := tx.Bucket([]byte(metaBucket)).Get([]byte(totalKey))
		if total != nil {
			n, err := strconv.ParseUint(string(total), 10, 64)
			if err == nil {
				l.Total = n
			}
		}

		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			var s ledger.Session

			if err := json.Unmarshal(v, &s); err != nil {
				slog.Debug(
					"skipping malformed session",
					slog.Uint64("key", btoi(k)),
					slog.Any("error", err),
				)

				return nil
			}

			l.Sessions = append(l.Sessions, s)

			return nil
		})
	})
	if err != nil {
		slog.Warn(
			"unable to read bolt store, starting fresh",
			slog.String("path", b.Path()),
			slog.Any("error", err),
		)

		return ledger.New()
	}

	slog.Info(
		"loaded previous sessions",
		slog.String("path", b.Path()),
		slog.Int("count", l.Len()),
	)

	return l
}

// Save replaces the stored sessions and total with the contents of l in a
// single transaction.
func (b *Bolt) Save(l *ledger.Ledger) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(sessionBucket))
		if err != nil && !errors.Is(err, berrors.ErrBucketNotFound) {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(sessionBucket))
		if err != nil {
			return err
		}

		for i := range l.Sessions {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}

			value, err := json.Marshal(l.Sessions[i])
			if err != nil {
				return err
			}

			if err := bucket.Put(itob(seq), value); err != nil {
				return err
			}
		}

		return tx.Bucket([]byte(metaBucket)).Put(
			[]byte(totalKey),
			[]byte(strconv.FormatUint(l.Total, 10)),
		)
	})
	if err != nil {
		return errSaveLedger.Fmt(b.Path()).Wrap(err)
	}

	return nil
}

// itob returns an 8-byte big endian representation of v so keys sort in
// insertion order.
func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)

	return b
}

func btoi(b []byte) uint64 {
	if len(b) != 8 {
		return 0
	}

	return binary.BigEndian.Uint64(b)
}
