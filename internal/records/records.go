// Package records reads the project list that drives a clone run.
package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/samber/lo"

	"repocloner/internal/ext"
	. "repocloner/internal/log"
)

const (
	ColumnProjectName = "project_name"
	ColumnGitURL      = "git_url"
	ColumnBranch      = "branch"
	ColumnCommitID    = "commit_id"
)

var ErrSourceNotFound = errors.New("CSV file not found")

type Record struct {
	Name     string
	GitURL   string
	Branch   string
	CommitID string
	Line     int
}

// Valid reports whether the record can be cloned. Invalid records are skipped, never counted.
func (r Record) Valid() bool {
	return r.Name != "" && r.GitURL != ""
}

func (r Record) Pinned() bool {
	return r.CommitID != ""
}

// Load reads every row of the CSV at path. Rows are returned in file order, including
// rows that are not Valid, so that listing can show every named project.
func Load(path string, defaultBranch string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("could not open CSV file %s: %w", path, err)
	}
	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			Log.Errorf("Failed to close CSV file: %v", err)
		}
	}(file)

	recs, err := Read(file, defaultBranch)
	if err != nil {
		return nil, fmt.Errorf("could not read CSV file %s: %w", path, err)
	}
	return recs, nil
}

// Read parses header-addressed CSV. Column order is free and absent columns read as blank.
// Quoting is lenient: a stray quote is kept as a literal character.
func Read(in io.Reader, defaultBranch string) ([]Record, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	columns := indexColumns(header)

	var recs []Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		field := func(column string) string {
			i, ok := columns[column]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		recs = append(recs, Record{
			Name:     field(ColumnProjectName),
			GitURL:   field(ColumnGitURL),
			Branch:   ext.DefaultValue(field(ColumnBranch), defaultBranch),
			CommitID: field(ColumnCommitID),
			Line:     line,
		})
	}
	return recs, nil
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}
	return columns
}

// Names lists the non-empty project names in input order.
func Names(recs []Record) []string {
	return lo.FilterMap(recs, func(r Record, _ int) (string, bool) {
		return r.Name, r.Name != ""
	})
}

// Select keeps the Valid records, narrowed to those named project when project is not empty.
func Select(recs []Record, project string) []Record {
	return lo.Filter(recs, func(r Record, _ int) bool {
		if !r.Valid() {
			Log.Debugf("Skipping CSV line %d: project name or git url missing", r.Line)
			return false
		}
		return project == "" || r.Name == project
	})
}
