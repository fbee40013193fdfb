package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/askeland/standup/internal/entry"
)

// LogsDirName is the per-project subdirectory holding dated JSON snapshots.
const LogsDirName = "logs"

// Warning describes a source file or record that could not be used.
// Loading is best-effort: a warning never aborts the load.
type Warning struct {
	Source string // file or directory the problem was found in
	Error  string // description of the problem
}

// Result contains the outcome of loading the snapshot tree: the normalized,
// de-duplicated entries in file-read order, plus warnings about anything
// that was skipped.
type Result struct {
	Entries  []entry.Entry
	Warnings []Warning
}

// Load reads every snapshot under dataRoot, expecting the layout
// <dataRoot>/<ProjectName>/logs/<prefix>-<YYYY-MM-DD>.json where each file
// is a JSON array of raw entry records. Records are normalized at this
// boundary and de-duplicated by id across all files (first occurrence
// wins). A missing or unreadable source yields a warning and zero entries
// from that source, never an error.
func Load(dataRoot string) Result {
	result := Result{
		Entries:  []entry.Entry{},
		Warnings: []Warning{},
	}

	projectDirs, err := os.ReadDir(dataRoot)
	if err != nil {
		result.Warnings = append(result.Warnings, Warning{
			Source: dataRoot,
			Error:  fmt.Sprintf("cannot read data directory: %v", err),
		})
		return result
	}

	seen := make(map[int64]bool)

	for _, dir := range projectDirs {
		if !dir.IsDir() {
			continue
		}

		logsDir := filepath.Join(dataRoot, dir.Name(), LogsDirName)
		files, err := os.ReadDir(logsDir)
		if err != nil {
			if os.IsNotExist(err) {
				// Project directory without a logs/ subdirectory; nothing to load.
				continue
			}
			result.Warnings = append(result.Warnings, Warning{
				Source: logsDir,
				Error:  fmt.Sprintf("cannot read logs directory: %v", err),
			})
			continue
		}

		// Deterministic read order: snapshot files sort by date thanks to
		// the <prefix>-<YYYY-MM-DD>.json naming.
		names := make([]string, 0, len(files))
		for _, f := range files {
			if !f.IsDir() && filepath.Ext(f.Name()) == ".json" {
				names = append(names, f.Name())
			}
		}
		sort.Strings(names)

		for _, name := range names {
			path := filepath.Join(logsDir, name)
			loadFile(path, seen, &result)
		}
	}

	return result
}

// loadFile reads one snapshot file and appends its usable entries to result.
func loadFile(path string, seen map[int64]bool, result *Result) {
	data, err := os.ReadFile(path)
	if err != nil {
		result.Warnings = append(result.Warnings, Warning{
			Source: path,
			Error:  fmt.Sprintf("cannot read file: %v", err),
		})
		return
	}

	var records []entry.Record
	if err := json.Unmarshal(data, &records); err != nil {
		result.Warnings = append(result.Warnings, Warning{
			Source: path,
			Error:  fmt.Sprintf("cannot parse JSON: %v", err),
		})
		return
	}

	for _, r := range records {
		e, err := entry.Normalize(r)
		if err != nil {
			result.Warnings = append(result.Warnings, Warning{
				Source: path,
				Error:  err.Error(),
			})
			continue
		}
		// Snapshots overlap; the same entry id may appear in several files.
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		result.Entries = append(result.Entries, e)
	}
}
