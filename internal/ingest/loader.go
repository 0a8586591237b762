package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/david/tender-board/internal/models"
)

// ErrSourceUnavailable marks a refresh where the source document could
// not be opened or decoded. It is a distinct signal: an empty dataset
// with this error is not the same as a source with zero tenders.
var ErrSourceUnavailable = errors.New("tender source unavailable")

// Dataset is one immutable snapshot of the normalized tender data.
// Rows and Events are index-aligned: Rows[i] and Events[i] come from
// the same admitted record and share an ID. Nothing mutates a
// published dataset; a refresh builds and publishes a new one.
type Dataset struct {
	Rows       []models.Tender
	Events     []models.CalendarEvent
	Categories []string // sorted vocabulary, no "All" sentinel
	Today      time.Time
	LoadedAt   time.Time
	Skipped    int
}

func emptyDataset(today time.Time) *Dataset {
	return &Dataset{
		Rows:       []models.Tender{},
		Events:     []models.CalendarEvent{},
		Categories: []string{},
		Today:      toDateOnly(today),
		LoadedAt:   time.Now().UTC(),
	}
}

// Load reads the source document and builds a dataset in one pass.
// Records that fail to decode or fail admission are skipped, not
// fatal. A missing file or invalid JSON returns an empty dataset
// wrapped in ErrSourceUnavailable.
func Load(path string, today time.Time, opts Options) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return emptyDataset(today), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return emptyDataset(today), fmt.Errorf("%w: invalid JSON: %v", ErrSourceUnavailable, err)
	}

	ds := emptyDataset(today)
	vocab := NewVocabulary()
	for _, msg := range doc.Tenders {
		var raw RawTender
		if err := json.Unmarshal(msg, &raw); err != nil {
			ds.Skipped++
			continue
		}
		row, event, ok := FromRaw(raw, ds.Today, opts)
		if !ok {
			ds.Skipped++
			continue
		}
		vocab.Add(row.CategoryPairs)
		ds.Rows = append(ds.Rows, row)
		ds.Events = append(ds.Events, event)
	}
	ds.Categories = vocab.Finalize()

	log.Printf("Loaded %d tenders from %s (%d skipped)", len(ds.Rows), path, ds.Skipped)
	return ds, nil
}

// Cache publishes dataset snapshots and reloads when the source file
// changes, keyed by path and modification time. Readers always get a
// complete snapshot; a refresh swaps the pointer under the lock.
type Cache struct {
	path string
	opts Options
	now  func() time.Time

	mu      sync.Mutex
	ds      *Dataset
	modTime time.Time
}

func NewCache(path string, opts Options) *Cache {
	return &Cache{
		path: path,
		opts: opts,
		now:  time.Now,
	}
}

// Snapshot returns the current dataset, reloading first if the source
// file has changed since the last load. On source failure it returns
// the empty dataset together with the error so callers can tell
// "source broken" from "no tenders".
func (c *Cache) Snapshot() (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(c.path)
	if err != nil {
		c.ds = nil
		return emptyDataset(c.now()), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if c.ds != nil && info.ModTime().Equal(c.modTime) {
		return c.ds, nil
	}
	return c.reloadLocked(info.ModTime())
}

// Refresh discards the cached snapshot and reloads unconditionally.
func (c *Cache) Refresh() (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	info, err := os.Stat(c.path)
	if err != nil {
		c.ds = nil
		return emptyDataset(c.now()), fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return c.reloadLocked(info.ModTime())
}

func (c *Cache) reloadLocked(modTime time.Time) (*Dataset, error) {
	ds, err := Load(c.path, c.now(), c.opts)
	if err != nil {
		c.ds = nil
		return ds, err
	}
	c.ds = ds
	c.modTime = modTime
	return ds, nil
}
