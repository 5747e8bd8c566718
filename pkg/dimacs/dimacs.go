// Package dimacs writes formulas in the standard DIMACS CNF text
// format and produces the per-instance export artifact set.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/dotypuzzle/doty/pkg/cnf"
)

// Write emits the formula in DIMACS CNF format: a "p cnf" header with
// the variable and clause counts, then one line per clause of signed
// integers terminated by 0.
func Write(w io.Writer, f *cnf.Formula) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.Vars, len(f.Clauses)); err != nil {
		return err
	}
	for _, clause := range f.Clauses {
		for _, lit := range clause {
			if _, err := bw.WriteString(strconv.Itoa(lit)); err != nil {
				return err
			}
			if err := bw.WriteByte(' '); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the formula to path, creating or truncating it.
func WriteFile(path string, f *cnf.Formula) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating DIMACS file %q", path)
	}
	defer file.Close()

	if err := Write(file, f); err != nil {
		return errors.Wrapf(err, "writing DIMACS file %q", path)
	}
	return errors.Wrapf(file.Close(), "closing DIMACS file %q", path)
}

// ExportArtifacts writes the instance files for one solved puzzle and
// returns their paths in write order. The plain formula goes to
// <prefix>_UNSAT.cnf when it has no models, to
// <prefix>_SAT_multiModel.cnf otherwise. When the enumeration ran to
// exhaustion (one recorded blocking clause per model), two more files
// follow: <prefix>_SAT_singleModel.cnf keeps all but the last model
// blocked and so has exactly one model left, and <prefix>_UNSAT.cnf
// blocks every model, its unsatisfiability proving the enumeration
// complete.
func ExportArtifacts(prefix string, f *cnf.Formula, models int, blocking []cnf.Clause) ([]string, error) {
	name := func(suffix string) string { return prefix + "_" + suffix }

	if models == 0 {
		path := name("UNSAT.cnf")
		if err := WriteFile(path, f); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	paths := []string{name("SAT_multiModel.cnf")}
	if err := WriteFile(paths[0], f); err != nil {
		return nil, err
	}
	if len(blocking) != models {
		return paths, nil
	}

	blocked := &cnf.Formula{Vars: f.Vars}
	blocked.Clauses = append(append([]cnf.Clause{}, f.Clauses...), blocking[:models-1]...)
	single := name("SAT_singleModel.cnf")
	if err := WriteFile(single, blocked); err != nil {
		return paths, err
	}
	paths = append(paths, single)

	blocked.Clauses = append(blocked.Clauses, blocking[models-1])
	unsat := name("UNSAT.cnf")
	if err := WriteFile(unsat, blocked); err != nil {
		return paths, err
	}
	return append(paths, unsat), nil
}
