// Package store persists viewing sessions under a flat data directory:
// one subdirectory per session holding metadata JSON and a CSV timeline of
// the variable snapshots the user dialed in while watching.
package store

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

// SessionMeta is what `physviz sessions` lists.
type SessionMeta struct {
	ID        string             `json:"id"`
	Scene     string             `json:"scene"`
	Timestamp time.Time          `json:"timestamp"`
	FPS       int                `json:"fps"`
	Frames    uint64             `json:"frames"`
	Variables map[string]float64 `json:"variables"`
}

// VarSnapshot is one timeline entry: the full variable snapshot in effect
// at a point in the session.
type VarSnapshot struct {
	Elapsed   float64
	Variables map[string]float64
}

// Save writes a session directory and returns its id.
func (s *Store) Save(sceneName string, fps int, frames uint64, final map[string]float64, timeline []VarSnapshot) (string, error) {
	id := fmt.Sprintf("%s_%d", sceneName, time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SessionMeta{
		ID:        id,
		Scene:     sceneName,
		Timestamp: time.Now(),
		FPS:       fps,
		Frames:    frames,
		Variables: final,
	}
	f, err := os.Create(filepath.Join(dir, "session.json"))
	if err != nil {
		return "", err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(timeline) == 0 {
		return id, nil
	}
	return id, s.writeTimeline(dir, timeline)
}

func (s *Store) writeTimeline(dir string, timeline []VarSnapshot) error {
	// Column set is the union of keys across snapshots, sorted; entries
	// missing a key get an empty cell, matching wholesale-replacement
	// update semantics.
	keySet := map[string]bool{}
	for _, snap := range timeline {
		for k := range snap.Variables {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(filepath.Join(dir, "variables.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := append([]string{"elapsed"}, keys...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, snap := range timeline {
		row := []string{strconv.FormatFloat(snap.Elapsed, 'f', 3, 64)}
		for _, k := range keys {
			if v, ok := snap.Variables[k]; ok {
				row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for every saved session, newest first.
func (s *Store) List() ([]SessionMeta, error) {
	dirEntries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SessionMeta{}, nil
		}
		return nil, err
	}

	sessions := make([]SessionMeta, 0)
	for _, e := range dirEntries {
		if !e.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name(), "session.json"))
		if err != nil {
			continue
		}
		var meta SessionMeta
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Timestamp.After(sessions[j].Timestamp)
	})
	return sessions, nil
}

// Load reads one session's metadata.
func (s *Store) Load(id string) (*SessionMeta, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "session.json"))
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", id, err)
	}
	var meta SessionMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}
