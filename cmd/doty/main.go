package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dotypuzzle/doty/pkg/dates"
	"github.com/dotypuzzle/doty/pkg/dimacs"
	"github.com/dotypuzzle/doty/pkg/lib/signals"
	"github.com/dotypuzzle/doty/pkg/lib/stopwatch"
	"github.com/dotypuzzle/doty/pkg/puzzle"
	"github.com/dotypuzzle/doty/pkg/solution"
	"github.com/dotypuzzle/doty/pkg/solver"
	"github.com/dotypuzzle/doty/pkg/theory"
	"github.com/dotypuzzle/doty/pkg/version"
)

var (
	enumerateAll  bool
	showSolutions bool
	verbose       bool
	dumpInstances bool
	puzzleFile    string
	showVersion   bool

	enableComponents  componentList
	disableComponents componentList
)

var errNoSolution = errors.New("no solution found")

func newRootCmd() *cobra.Command {
	// Var flags do not reapply defaults the way value flags do; start each
	// command from a clean slate.
	enableComponents, disableComponents = nil, nil

	cmd := &cobra.Command{
		Use:   "doty [DATE...]",
		Short: "Day-of-the-Year puzzle solver",
		Long: `Solves the Day-of-the-Year board puzzle: all pieces are placed on the
calendar board so that exactly the three cells naming the target date
(month, day number and weekday) stay visible. Without a DATE argument
the current date is solved for.

Date words are matched against the board leniently, in any order and
with any separators: "Mon Jan 1", "Monday, January 1", "1 Jan Monday"
and "MON JAN 01" all name the same instance.`,
		Example: `  doty
  doty Fri Dec 25
  doty --count Mon Jan 1
  doty -c -s -v Sat Oct 25
  doty --dump -v`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
		RunE: run,
	}

	cmd.Flags().BoolVarP(&enumerateAll, "count", "c", false, "enumerate all solutions for the target date")
	cmd.Flags().BoolVarP(&showSolutions, "show", "s", false, "render solutions (on by default unless --count is given alone)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print formula components, formula size and timing breakdown")
	cmd.Flags().BoolVar(&dumpInstances, "dump", false, "export the solved instance(s) as DIMACS CNF files")
	cmd.Flags().Var(&enableComponents, "enable", "formula components to add, comma separated or repeated (e.g. T.4)")
	cmd.Flags().Var(&disableComponents, "disable", "formula components to remove, comma separated or repeated (e.g. T.3.2)")
	cmd.Flags().StringVar(&puzzleFile, "puzzle", "", "YAML file with an alternative board and piece catalogue")
	cmd.Flags().BoolVar(&showVersion, "version", false, "displays doty version")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if showVersion {
		fmt.Fprint(out, version.String())
		return nil
	}

	started := time.Now()
	watch := stopwatch.New()

	watch.Start("Preprocessing")
	var (
		board  *puzzle.Board
		pieces []puzzle.Piece
		err    error
	)
	if puzzleFile != "" {
		board, pieces, err = puzzle.LoadDefinition(puzzleFile)
	} else {
		board, pieces, err = puzzle.Default()
	}
	if err != nil {
		return err
	}

	labels, targets, err := dates.Resolve(args, board, time.Now())
	if err != nil {
		return err
	}

	cfg := theory.DefaultConfig()
	for _, c := range enableComponents {
		cfg.Enable(c)
	}
	for _, c := range disableComponents {
		cfg.Disable(c)
	}

	asm := theory.NewAssembler(board, pieces, cfg)
	watch.Stop("Preprocessing")

	fmt.Fprintln(out, "Target date: "+strings.Join(labels, " "))
	if verbose {
		fmt.Fprintln(out, "[THEORY] Formula components:")
		fmt.Fprintln(out, "[THEORY] - Included: "+joinComponents(cfg.Included()))
		fmt.Fprintln(out, "[THEORY] - Excluded: "+joinComponents(cfg.Excluded()))
	}

	watch.Start("Encoding")
	formula, err := asm.Formula(targets)
	if err != nil {
		return err
	}
	watch.Stop("Encoding")

	if verbose {
		fmt.Fprintln(out, "[CNF] Formula size:")
		fmt.Fprintf(out, "[CNF] - variables: %d\n", formula.Vars)
		fmt.Fprintf(out, "[CNF] - clauses:   %d\n", len(formula.Clauses))
		fmt.Fprintf(out, "[CNF] - literals:  %d\n", formula.Literals())
	}

	show := showSolutions || !enumerateAll

	watch.Start("SAT setup")
	options := []solver.Option{
		solver.WithFormula(formula),
		solver.WithCoreVariables(asm.Allocator().CoreCount()),
		solver.WithLogger(log.StandardLogger()),
	}
	if dumpInstances && enumerateAll {
		options = append(options, solver.WithBlockingRecord())
	}
	enum, err := solver.New(options...)
	if err != nil {
		return err
	}
	watch.Stop("SAT setup")

	ctx := signals.Context()
	models := 0

	watch.Start("SAT solving")
	for enum.Next(ctx) {
		watch.Stop("SAT solving")
		models++

		if enumerateAll {
			if show {
				if models > 1 {
					// Cursor up over the previous solution so the next one
					// overwrites it in place.
					fmt.Fprintf(out, "\033[%dA\n", board.Height()*2+3)
				}
				fmt.Fprintf(out, "Solution #%d:\n", models)
			} else {
				fmt.Fprintf(out, "\r\033[K|solutions| ≥ %d", models)
			}
		}
		if show {
			watch.Start("Printing")
			fmt.Fprint(out, solution.Decode(enum.Model(), board, asm.Allocator()).Render())
			watch.Stop("Printing")
		}

		if !enumerateAll {
			break
		}
		watch.Start("SAT solving")
	}
	watch.Stop("SAT solving")
	if err := enum.Err(); err != nil {
		return err
	}

	if enumerateAll {
		fmt.Fprintf(out, "\r\033[K|solutions| = %d\n", models)
	} else if models == 0 {
		fmt.Fprintln(out, "No solution found")
	}

	if dumpInstances {
		watch.Start("DIMACS dumping")
		if verbose {
			fmt.Fprintln(out, "[DIMACS] Dumping instance(s):")
		}
		files, err := dimacs.ExportArtifacts(dates.ExportPrefix(labels, time.Now()), formula, models, enum.Blocking())
		if err != nil {
			return err
		}
		if verbose {
			for _, name := range files {
				fmt.Fprintf(out, "[DIMACS] - '%s'\n", name)
			}
		}
		watch.Stop("DIMACS dumping")
	}

	total := time.Since(started)
	if verbose {
		fmt.Fprintf(out, "[TIME] Total CPU time: %s\n", stopwatch.Format(total))
		for _, row := range watch.Lines(total) {
			fmt.Fprintln(out, "[TIME] "+row)
		}
	}

	if models == 0 {
		return errNoSolution
	}
	return nil
}

func joinComponents(components []theory.Component) string {
	tags := make([]string, 0, len(components))
	for _, c := range components {
		tags = append(tags, c.String())
	}
	return strings.Join(tags, " ")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNoSolution) {
			log.Error(err)
		}
		os.Exit(1)
	}
}
