// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	// FieldCount is the number of whitespace-separated columns of a data line.
	FieldCount = 8

	commentPrefix = "#"

	// maxLineBytes bounds a single line; real rows are well under 200 bytes.
	maxLineBytes = 1 << 20
)

// columnNames are the data columns in file order, used in error messages.
var columnNames = [FieldCount]string{
	"symbol", "Z", "A", "N", "mass", "solar mass fraction", "mass fraction", "isotope mass fraction",
}

// Load reads the dataset file at path and tags it with stage.
//
// Errors:
//   - ErrParse if stage is not a known Stage, or if any line is malformed.
//   - ErrIO if the file does not exist or cannot be read.
//
// On error no Dataset is returned.
func Load(path string, stage Stage) (*Dataset, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %s", ErrParse, stage)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	ds, err := Parse(f, stage)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ds, nil
}

// LoadLabel is Load with the stage given as a label (see ParseStage).
func LoadLabel(path, label string) (*Dataset, error) {
	stage, err := ParseStage(label)
	if err != nil {
		return nil, err
	}

	return Load(path, stage)
}

// Parse reads a dataset from r.
//
// Format:
//   - one species per line: symbol Z A N mass solarMF MF isotopeMF,
//     separated by runs of whitespace;
//   - blank lines and lines starting with '#' are skipped;
//   - the first remaining line is a header, and skipped, when it has
//     exactly eight fields and none of the seven numeric columns is a number.
//
// Errors:
//   - ErrParse (with the 1-based line number) on a wrong field count, a
//     numeric field that is not a finite number, or a negative mass fraction.
//   - ErrIO if r fails.
func Parse(r io.Reader, stage Stage) (*Dataset, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: unknown stage %s", ErrParse, stage)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	var (
		species []SpeciesRecord
		lineNo  int
		started bool
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		fields := strings.Fields(line)
		if !started {
			started = true
			if isHeader(fields) {
				continue
			}
		}

		rec, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrParse, lineNo, err)
		}
		species = append(species, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return &Dataset{Stage: stage, Species: species}, nil
}

// isHeader reports whether the first content line is a column header.
// A short, long or partly numeric line is data and goes to parseRecord.
func isHeader(fields []string) bool {
	if len(fields) != FieldCount {
		return false
	}
	for _, f := range fields[1:] {
		if _, err := strconv.ParseFloat(f, 64); err == nil {
			return false
		}
	}

	return true
}

// parseRecord maps the fields of one data line onto a SpeciesRecord.
func parseRecord(fields []string) (SpeciesRecord, error) {
	if len(fields) != FieldCount {
		return SpeciesRecord{}, fmt.Errorf("got %d fields, want %d", len(fields), FieldCount)
	}

	var nums [FieldCount]float64
	for i := 1; i < FieldCount; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return SpeciesRecord{}, fmt.Errorf("%s %q: %w", columnNames[i], fields[i], err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return SpeciesRecord{}, fmt.Errorf("%s %q: not a finite number", columnNames[i], fields[i])
		}
		nums[i] = v
	}

	rec := SpeciesRecord{
		Symbol:              fields[0],
		Z:                   nums[1],
		A:                   nums[2],
		N:                   nums[3],
		AtomicMass:          nums[4],
		SolarMassFraction:   nums[5],
		MassFraction:        nums[6],
		IsotopeMassFraction: nums[7],
	}
	if rec.MassFraction < 0 {
		return SpeciesRecord{}, fmt.Errorf("%s %q: must be >= 0", columnNames[6], fields[6])
	}

	return rec, nil
}
