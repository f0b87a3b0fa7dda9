package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	// LogFileName is the active log file inside the log directory.
	LogFileName = "favicache.log"
	logDirPerm  = 0o750
	logFilePerm = 0o600

	// backupStamp sorts lexically and stays unique across same-second rotations.
	backupStamp = "20060102T150405.000000000"
)

// RotatingFile is an io.WriteCloser over LogDir/LogFileName. It moves the file
// aside once it would exceed MaxSizeMB and prunes backups by age and count.
type RotatingFile struct {
	mu    sync.Mutex
	cfg   FileConfig
	limit int64
	file  *os.File
	size  int64
	now   func() time.Time
}

// OpenRotatingFile creates the log directory if needed and opens the active file
// for appending.
func OpenRotatingFile(cfg FileConfig) (*RotatingFile, error) {
	if cfg.MaxSizeMB <= 0 {
		return nil, fmt.Errorf("invalid max log size %d MB", cfg.MaxSizeMB)
	}
	if err := os.MkdirAll(cfg.LogDir, logDirPerm); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	rf := &RotatingFile{
		cfg:   cfg,
		limit: int64(cfg.MaxSizeMB) << 20,
		now:   time.Now,
	}
	if err := rf.open(); err != nil {
		return nil, err
	}
	return rf, nil
}

func (rf *RotatingFile) activePath() string {
	return filepath.Join(rf.cfg.LogDir, LogFileName)
}

func (rf *RotatingFile) open() error {
	f, err := os.OpenFile(rf.activePath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("stat log file: %w", err)
	}
	rf.file, rf.size = f, info.Size()
	return nil
}

// Write appends p, rotating first when p would push a non-empty file past the limit.
// A single entry larger than the limit is still written whole.
func (rf *RotatingFile) Write(p []byte) (int, error) {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		if err := rf.open(); err != nil {
			return 0, err
		}
	}
	if rf.size > 0 && rf.size+int64(len(p)) > rf.limit {
		if err := rf.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := rf.file.Write(p)
	rf.size += int64(n)
	return n, err
}

func (rf *RotatingFile) rotate() error {
	if err := rf.file.Close(); err != nil {
		warn("close log file", err)
	}
	rf.file = nil

	backup := rf.activePath() + "." + rf.now().Format(backupStamp)
	if err := os.Rename(rf.activePath(), backup); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	if rf.cfg.Compress {
		if err := gzipInPlace(backup); err != nil {
			warn("compress "+backup, err)
		}
	}

	rf.prune()
	return rf.open()
}

// gzipInPlace replaces path with path.gz. The original is kept if compression fails.
func gzipInPlace(path string) (err error) {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	dst, err := os.OpenFile(path+".gz", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, logFilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(path + ".gz")
		}
	}()

	zw := gzip.NewWriter(dst)
	_, err = io.Copy(zw, src)
	err = errors.Join(err, zw.Close(), dst.Close())
	if err != nil {
		return err
	}
	return os.Remove(path)
}

type backupFile struct {
	name    string
	modTime time.Time
}

// prune drops backups older than MaxAgeDays, then the oldest beyond MaxBackups.
func (rf *RotatingFile) prune() {
	entries, err := os.ReadDir(rf.cfg.LogDir)
	if err != nil {
		return
	}

	maxAge := time.Duration(rf.cfg.MaxAgeDays) * 24 * time.Hour
	now := rf.now()
	var kept []backupFile
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), LogFileName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if maxAge > 0 && now.Sub(info.ModTime()) > maxAge {
			rf.remove(e.Name())
			continue
		}
		kept = append(kept, backupFile{name: e.Name(), modTime: info.ModTime()})
	}

	if rf.cfg.MaxBackups <= 0 || len(kept) <= rf.cfg.MaxBackups {
		return
	}
	slices.SortFunc(kept, func(a, b backupFile) int {
		if c := a.modTime.Compare(b.modTime); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	for _, b := range kept[:len(kept)-rf.cfg.MaxBackups] {
		rf.remove(b.name)
	}
}

func (rf *RotatingFile) remove(name string) {
	if err := os.Remove(filepath.Join(rf.cfg.LogDir, name)); err != nil {
		warn("remove old log "+name, err)
	}
}

// Close closes the active file. A later Write reopens it.
func (rf *RotatingFile) Close() error {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	if rf.file == nil {
		return nil
	}
	err := rf.file.Close()
	rf.file = nil
	return err
}

// warn reports problems of the log file itself, which cannot go through the logger.
func warn(what string, err error) {
	fmt.Fprintf(os.Stderr, "favicache: %s: %v\n", what, err)
}
