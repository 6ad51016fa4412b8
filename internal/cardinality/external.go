package cardinality

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ExternalEncoder shells out to a pseudo-Boolean-to-CNF encoder binary, the
// way identifying_codes.py::cardinality_constraint() invokes pblib's
// pbencoder: write an OPB file, run the tool, read back a DIMACS CNF file,
// and remap its internal variable numbering onto our own.
type ExternalEncoder struct {
	// BinaryPath is the encoder executable, typically cfg.PBEncoderPath
	// joined with "pbencoder".
	BinaryPath string
	// TempDir is where scratch .opb/.cnf files are created and removed.
	TempDir string
}

// Encode implements Encoder.
func (e ExternalEncoder) Encode(vars []int, bound Bound, startIdx int) ([][]int, int, error) {
	sorted := sortedCopy(vars)
	for _, v := range sorted {
		if v >= startIdx {
			return nil, 0, ErrStartIndexTooLow
		}
	}

	pblibToVar := make(map[int]int, len(sorted)) // pblib local index -> our var id
	varToPblib := make(map[int]int, len(sorted))
	for i, v := range sorted {
		idx := i + 1
		pblibToVar[idx] = v
		varToPblib[v] = idx
	}

	id := uuid.New().String()
	opbPath := filepath.Join(e.TempDir, fmt.Sprintf("idcode_%s.opb", id))
	cnfPath := filepath.Join(e.TempDir, fmt.Sprintf("idcode_%s.cnf", id))
	defer os.Remove(opbPath)
	defer os.Remove(cnfPath)

	if err := os.WriteFile(opbPath, []byte(writeOPB(len(sorted), bound)), 0o600); err != nil {
		return nil, 0, fmt.Errorf("cardinality: writing OPB scratch file: %w", err)
	}

	out, err := os.Create(cnfPath)
	if err != nil {
		return nil, 0, fmt.Errorf("cardinality: creating CNF scratch file: %w", err)
	}
	cmd := exec.Command(e.BinaryPath, opbPath)
	cmd.Stdout = out
	runErr := cmd.Run()
	out.Close()
	if runErr != nil {
		return nil, 0, fmt.Errorf("cardinality: external encoder failed: %w", runErr)
	}

	clauses, nCardVars, err := parseDIMACS(cnfPath)
	if err != nil {
		return nil, 0, err
	}

	// Any pblib-local index beyond len(sorted) is a fresh auxiliary the
	// encoder introduced; renumber those starting at startIdx, in the
	// order pblib assigned them.
	next := startIdx
	for idx := len(sorted) + 1; idx <= nCardVars; idx++ {
		pblibToVar[idx] = next
		next++
	}

	remapped := make([][]int, len(clauses))
	for i, clause := range clauses {
		rc := make([]int, len(clause))
		for j, lit := range clause {
			v := lit
			neg := v < 0
			if neg {
				v = -v
			}
			mapped, ok := pblibToVar[v]
			if !ok {
				return nil, 0, fmt.Errorf("cardinality: external encoder referenced unknown variable index %d", v)
			}
			if neg {
				mapped = -mapped
			}
			rc[j] = mapped
		}
		remapped[i] = rc
	}

	maxVar := next - 1
	if maxVar < startIdx-1 {
		maxVar = startIdx - 1
	}
	return remapped, maxVar, nil
}

// parseDIMACS reads a DIMACS CNF file, returning its clauses (terminating
// 0 stripped) and its declared variable count from the "p cnf n m" header.
func parseDIMACS(path string) ([][]int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("cardinality: reading CNF scratch file: %w", err)
	}
	defer f.Close()

	var clauses [][]int
	nVars := 0
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1<<16), 1<<24)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			fields := strings.Fields(line)
			if len(fields) < 3 {
				return nil, 0, fmt.Errorf("cardinality: malformed DIMACS header %q", line)
			}
			nVars, err = strconv.Atoi(fields[2])
			if err != nil {
				return nil, 0, fmt.Errorf("cardinality: malformed DIMACS header %q: %w", line, err)
			}
			continue
		}
		fields := strings.Fields(line)
		lits := make([]int, 0, len(fields))
		for _, tok := range fields {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, 0, fmt.Errorf("cardinality: malformed clause literal %q: %w", tok, err)
			}
			if n == 0 {
				break
			}
			lits = append(lits, n)
		}
		clauses = append(clauses, lits)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("cardinality: scanning CNF scratch file: %w", err)
	}
	return clauses, nVars, nil
}
