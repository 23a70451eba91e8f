// Package storage persists headless runs: a metadata.json per run plus a
// series.csv of per-tick samples.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata summarizes one headless run.
type RunMetadata struct {
	ID           string    `json:"id"`
	Theme        string    `json:"theme"`
	Timestamp    time.Time `json:"timestamp"`
	Seed         int64     `json:"seed"`
	Ticks        int       `json:"ticks"`
	MaxParticles int       `json:"max_particles"`
	PeakLive     int       `json:"peak_live"`
	Emitted      int       `json:"emitted"`
	Evicted      int       `json:"evicted"`
	Retired      int       `json:"retired"`
}

// Sample is one row of the per-tick series.
type Sample struct {
	Tick    uint64
	Live    int
	Emitted int
	Evicted int
	Bass    float64
	Mid     float64
	High    float64
	Beat    bool
}

// Save writes one run directory and returns its ID.
func (s *Store) Save(meta RunMetadata, series []Sample) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Theme, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	if meta.Timestamp.IsZero() {
		meta.Timestamp = time.Now()
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := writeSeries(filepath.Join(runDir, "series.csv"), series); err != nil {
		return "", err
	}
	return runID, nil
}

func writeSeries(path string, series []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"tick", "live", "emitted", "evicted", "bass", "mid", "high", "beat"}); err != nil {
		return err
	}
	for _, row := range series {
		beat := "0"
		if row.Beat {
			beat = "1"
		}
		rec := []string{
			strconv.FormatUint(row.Tick, 10),
			strconv.Itoa(row.Live),
			strconv.Itoa(row.Emitted),
			strconv.Itoa(row.Evicted),
			strconv.FormatFloat(row.Bass, 'f', 1, 64),
			strconv.FormatFloat(row.Mid, 'f', 1, 64),
			strconv.FormatFloat(row.High, 'f', 1, 64),
			beat,
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// Load reads one run's metadata by ID.
func (s *Store) Load(runID string) (RunMetadata, error) {
	var meta RunMetadata
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return meta, fmt.Errorf("run %s: %w", runID, err)
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("run %s: %w", runID, err)
	}
	return meta, nil
}

// LoadSeries reads one run's per-tick series.
func (s *Store) LoadSeries(runID string) ([]Sample, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, "series.csv"))
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 1 {
		return nil, nil
	}

	series := make([]Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < 8 {
			continue
		}
		tick, _ := strconv.ParseUint(rec[0], 10, 64)
		live, _ := strconv.Atoi(rec[1])
		emitted, _ := strconv.Atoi(rec[2])
		evicted, _ := strconv.Atoi(rec[3])
		bass, _ := strconv.ParseFloat(rec[4], 64)
		mid, _ := strconv.ParseFloat(rec[5], 64)
		high, _ := strconv.ParseFloat(rec[6], 64)
		series = append(series, Sample{
			Tick:    tick,
			Live:    live,
			Emitted: emitted,
			Evicted: evicted,
			Bass:    bass,
			Mid:     mid,
			High:    high,
			Beat:    rec[7] == "1",
		})
	}
	return series, nil
}

// List returns the metadata of every saved run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}
