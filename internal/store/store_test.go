package store

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}

	final := map[string]float64{"theta0": 0.6, "damping": 0.15}
	id, err := s.Save("pendulum", 30, 450, final, nil)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	meta, err := s.Load(id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if meta.Scene != "pendulum" || meta.FPS != 30 || meta.Frames != 450 {
		t.Fatalf("round trip lost fields: %+v", meta)
	}
	if meta.Variables["theta0"] != 0.6 {
		t.Fatalf("round trip lost variables: %+v", meta.Variables)
	}
}

func TestTimelineCSV(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	// Second snapshot drops "damping"; its cell must come out empty.
	timeline := []VarSnapshot{
		{Elapsed: 0, Variables: map[string]float64{"theta0": 0.6, "damping": 0.15}},
		{Elapsed: 2.5, Variables: map[string]float64{"theta0": 1.0}},
	}
	id, err := s.Save("pendulum", 30, 75, timeline[1].Variables, timeline)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	f, err := os.Open(filepath.Join(dir, id, "variables.csv"))
	if err != nil {
		t.Fatalf("timeline file missing: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "elapsed" || header[1] != "damping" || header[2] != "theta0" {
		t.Fatalf("unexpected header: %v", header)
	}
	if rows[2][1] != "" {
		t.Fatalf("dropped key should leave an empty cell, got %q", rows[2][1])
	}
	if rows[2][2] != "1.000000" {
		t.Fatalf("unexpected theta0 cell: %q", rows[2][2])
	}
}

func TestEmptyTimelineSkipsCSV(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	id, err := s.Save("wave", 30, 10, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, id, "variables.csv")); !os.IsNotExist(err) {
		t.Fatal("empty timeline should not write a csv")
	}
}

func TestListEmptyAndMissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "never-created"))
	sessions, err := s.List()
	if err != nil {
		t.Fatalf("list on missing dir: %v", err)
	}
	if len(sessions) != 0 {
		t.Fatalf("expected no sessions, got %d", len(sessions))
	}
}

func TestListSkipsJunkEntries(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	// A stray file and a directory without metadata must both be ignored.
	if err := os.WriteFile(filepath.Join(dir, "stray.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "not-a-session"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save("spring", 30, 5, nil, nil); err != nil {
		t.Fatal(err)
	}

	sessions, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	if sessions[0].Scene != "spring" {
		t.Fatalf("unexpected session: %+v", sessions[0])
	}
}

func TestLoadUnknownSession(t *testing.T) {
	s := New(t.TempDir())
	if _, err := s.Load("pendulum_0"); err == nil {
		t.Fatal("expected an error for an unknown session")
	}
}
