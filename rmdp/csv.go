package rmdp

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvHeader is the informational header row; only column order is
// enforced on import, the names themselves are never checked.
var csvHeader = []string{"idstatefrom", "idaction", "idoutcome", "idstateto", "probability", "reward"}

// Import reads an RMDP transition tensor from r in the wire CSV format
// (spec.md §6): UTF-8, comma-separated, one record per line, an optional
// header, then six fields per line -- four non-negative integers then two
// reals. Every record is appended via AddTransition, so grow-on-write
// applies and state ids may appear in any order. Outcome mixing
// distributions and thresholds are never part of this format; a
// round-trip resets them to their defaults (empty/0).
//
// A blank line terminates parsing without error, even mid-file. A record
// with a whitespace-only field is ErrParseError.
func Import(r io.Reader, header bool) (*RMDP, error) {
	scanner := bufio.NewScanner(r)
	result := New()

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if line == "" {
			break
		}

		if lineNo == 1 && header {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return nil, fmt.Errorf("%w: line %d: expected 6 fields, got %d", ErrParseError, lineNo, len(fields))
		}
		for _, field := range fields {
			if field != "" && strings.TrimSpace(field) == "" {
				return nil, fmt.Errorf("%w: line %d: whitespace-only field", ErrParseError, lineNo)
			}
		}

		idstatefrom, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: idstatefrom %q: %v", ErrParseError, lineNo, fields[0], err)
		}
		idaction, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: idaction %q: %v", ErrParseError, lineNo, fields[1], err)
		}
		idoutcome, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: idoutcome %q: %v", ErrParseError, lineNo, fields[2], err)
		}
		idstateto, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: idstateto %q: %v", ErrParseError, lineNo, fields[3], err)
		}
		probability, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: probability %q: %v", ErrParseError, lineNo, fields[4], err)
		}
		reward, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: reward %q: %v", ErrParseError, lineNo, fields[5], err)
		}

		if err := result.AddTransition(idstatefrom, idaction, idoutcome, idstateto, probability, reward); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}

	return result, nil
}

// Export walks the transition tensor in lexicographic (state, action,
// outcome, branch) order and writes it to w in the wire CSV format.
// Empty intermediate actions/outcomes are silently skipped; this implies
// a non-identity round-trip shape when gaps existed before export (an
// action with no outcomes, or an outcome with no branches, contributes
// no rows, so re-importing the export may produce a smaller action
// vector at that state than before export).
func Export(w io.Writer, m *RMDP, header bool) error {
	bw := bufio.NewWriter(w)

	writeLine := func(fields []string) error {
		if _, err := bw.WriteString(strings.Join(fields, ",")); err != nil {
			return err
		}
		return bw.WriteByte('\n')
	}

	if header {
		if err := writeLine(csvHeader); err != nil {
			return fmt.Errorf("%w: %v", ErrIOError, err)
		}
	}

	for i := range m.states {
		actions := m.states[i].actions
		for j := range actions {
			outcomes := actions[j].outcomes
			for k := range outcomes {
				t := &outcomes[k]
				for l := 0; l < t.Count(); l++ {
					row := []string{
						strconv.Itoa(i),
						strconv.Itoa(j),
						strconv.Itoa(k),
						strconv.Itoa(t.indices[l]),
						strconv.FormatFloat(t.probabilities[l], 'g', -1, 64),
						strconv.FormatFloat(t.rewards[l], 'g', -1, 64),
					}
					if err := writeLine(row); err != nil {
						return fmt.Errorf("%w: %v", ErrIOError, err)
					}
				}
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	return nil
}

// ImportFile opens path, reads an RMDP from it, and closes the handle on
// every exit path including error.
func ImportFile(path string, header bool) (*RMDP, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	return Import(f, header)
}

// ExportFile creates (or truncates) path and writes m to it, closing the
// handle on every exit path including error.
func ExportFile(path string, m *RMDP, header bool) error {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIOError, err)
	}
	defer f.Close()
	return Export(f, m, header)
}
