// Package csvfile reads FARS year files from disk into domain tables.
package csvfile

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/dsnet/compress/bzip2"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/BFavetto/fars/internal/domain"
	"github.com/BFavetto/fars/internal/observability"
)

// columnTypes pins the columns the pipeline interprets; all others are type-detected.
var columnTypes = map[string]series.Type{
	domain.ColMonth:     series.Int,
	domain.ColState:     series.Int,
	domain.ColLongitude: series.Float,
	domain.ColLatitude:  series.Float,
}

// Loader reads year files. It implements pipeline.YearLoader.
type Loader struct {
	dataDir string
	cache   *tableCache
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewLoader creates a Loader resolving year files under dataDir. A cacheSize
// of 0 disables the parsed-table cache.
func NewLoader(dataDir string, cacheSize int, metrics *observability.Metrics, logger *slog.Logger) (*Loader, error) {
	l := &Loader{
		dataDir: dataDir,
		metrics: metrics,
		logger:  logger,
	}
	if cacheSize > 0 {
		c, err := newTableCache(cacheSize)
		if err != nil {
			return nil, fmt.Errorf("table cache: %w", err)
		}
		l.cache = c
	}
	return l, nil
}

// Path returns where the file for y is expected.
func (l *Loader) Path(y domain.Year) string {
	return filepath.Join(l.dataDir, domain.Filename(y))
}

// LoadYear loads the file for y from the data directory.
func (l *Loader) LoadYear(y domain.Year) (*domain.YearTable, error) {
	return l.Load(l.Path(y))
}

// Load parses the CSV file at path, decompressing it first when the name
// ends in ".bz2". A missing path yields a *domain.FileNotFoundError.
// Repeated loads of an unchanged file return equal content.
func (l *Loader) Load(path string) (*domain.YearTable, error) {
	start := clock.Now()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.FileNotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	digest := xxhash.Sum64(raw)
	key := filepath.Clean(path)
	if l.cache != nil {
		if table, ok := l.cache.get(key, digest); ok {
			l.metrics.TableCache.WithLabelValues("hit").Inc()
			l.metrics.LoadDuration.Observe(clock.Since(start).Seconds())
			return table, nil
		}
		l.metrics.TableCache.WithLabelValues("miss").Inc()
	}

	table, err := parse(path, raw)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.put(key, digest, table)
	}
	l.metrics.RecordsLoaded.Add(float64(table.Len()))
	l.metrics.LoadDuration.Observe(clock.Since(start).Seconds())
	l.logger.Debug("year file parsed",
		"path", path,
		"rows", table.Len(),
		"columns", len(table.Names()),
	)
	return table, nil
}

func parse(path string, raw []byte) (*domain.YearTable, error) {
	data := raw
	if strings.HasSuffix(path, ".bz2") {
		zr, err := bzip2.NewReader(bytes.NewReader(raw), nil)
		if err != nil {
			return nil, fmt.Errorf("open bzip2 stream %s: %w", path, err)
		}
		defer zr.Close()
		if data, err = io.ReadAll(zr); err != nil {
			return nil, fmt.Errorf("decompress %s: %w", path, err)
		}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	df := dataframe.ReadCSV(bytes.NewReader(data), dataframe.WithTypes(columnTypes))
	if df.Err != nil {
		if header, ok := headerOnly(data); ok {
			return domain.NewYearTable(emptyFrame(header))
		}
		return nil, fmt.Errorf("parse %s: %w", path, df.Err)
	}
	return domain.NewYearTable(df)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// headerOnly reports whether data is a CSV header with no rows after it.
func headerOnly(data []byte) ([]string, bool) {
	r := csv.NewReader(bytes.NewReader(data))
	header, err := r.Read()
	if err != nil || len(header) == 0 {
		return nil, false
	}
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		return nil, false
	}
	return header, true
}

// emptyFrame builds a zero-row frame carrying the header's columns, typed
// like a parsed file would be.
func emptyFrame(header []string) dataframe.DataFrame {
	cols := make([]series.Series, len(header))
	for i, name := range header {
		typ, ok := columnTypes[name]
		if !ok {
			typ = series.String
		}
		cols[i] = series.New([]string{}, typ, name)
	}
	return dataframe.New(cols...)
}
