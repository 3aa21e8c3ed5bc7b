// Command knightpath takes a start and a target cell on a rectangular
// chessboard and prints every minimum-length knight move sequence
// between them, writing the all-shortest-paths graph as a Graphviz DOT
// file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/dot"
	"github.com/katalvlaran/knightpath/explore"
	"github.com/katalvlaran/knightpath/paths"
)

// dotFileName is the DOT output written under --output-dir.
const dotFileName = "knight_paths.dot"

var (
	// Flags
	boardWidth  int
	boardLength int
	outputDir   string
	maxPaths    int
	verbose     bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "knightpath ROW COL TARGET_ROW TARGET_COL",
	Short: "All shortest knight paths between two cells of a chessboard",
	Long: `knightpath runs a layered breadth-first search over the knight's move
graph of a rectangular chessboard (default 8x8) and reconstructs every
minimum-length move sequence from the start cell to the target cell.

The shortest paths are printed to stdout, and the all-shortest-paths
graph is written as a Graphviz DOT file under --output-dir, rendered
over a checkerboard background with one color per path.

Cells are zero-based (row, column) pairs: 0 <= row < width,
0 <= column < length.`,
	Args: cobra.ExactArgs(4),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE:          runSearch,
	SilenceErrors: false,
	SilenceUsage:  true,
}

func init() {
	rootCmd.Flags().IntVarP(&boardWidth, "board-width", "W", 8, "number of board rows")
	rootCmd.Flags().IntVarP(&boardLength, "board-length", "L", 8, "number of board columns")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "graphviz_output", "directory for the DOT file")
	rootCmd.Flags().IntVarP(&maxPaths, "max-paths", "n", 0, "print at most n paths (0 = all)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// runSearch parses the four positional cells and drives the full
// pipeline: explore, enumerate, serialize, write.
func runSearch(cmd *cobra.Command, args []string) error {
	coords := make([]int, len(args))
	names := []string{"ROW", "COL", "TARGET_ROW", "TARGET_COL"}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return fmt.Errorf("%s must be an integer, got %q", names[i], a)
		}
		coords[i] = v
	}
	start := board.Cell{Row: coords[0], Col: coords[1]}
	target := board.Cell{Row: coords[2], Col: coords[3]}

	b, err := board.New(boardWidth, boardLength)
	if err != nil {
		return err
	}
	logger.Debug("board ready",
		zap.Int("width", boardWidth),
		zap.Int("length", boardLength),
		zap.Stringer("start", start),
		zap.Stringer("target", target))

	began := time.Now()
	res, err := explore.Explore(b, start, target)
	if err != nil {
		return err
	}

	total, err := paths.Count(res, start, target)
	if err != nil {
		return err
	}

	// Draw from the lazy sequence: with --max-paths the tail of a large
	// path set is never materialized.
	seq, err := paths.Seq(res, start, target)
	if err != nil {
		return err
	}
	var drawn []paths.Path
	for p := range seq {
		drawn = append(drawn, p)
		if maxPaths > 0 && len(drawn) == maxPaths {
			break
		}
	}
	elapsed := time.Since(began)

	g, err := paths.NewGraph(res, start, target)
	if err != nil {
		return err
	}
	text, err := dot.Marshal(g, dot.WithBoard(b), dot.WithPathColors(drawn))
	if err != nil {
		return err
	}
	if err = os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	outPath := filepath.Join(outputDir, dotFileName)
	if err = os.WriteFile(outPath, text, 0o644); err != nil {
		return fmt.Errorf("write DOT file: %w", err)
	}

	logger.Info("search complete",
		zap.Int("distance", res.TargetDist),
		zap.Int("paths", total),
		zap.Int("printed", len(drawn)),
		zap.Duration("elapsed", elapsed),
		zap.String("dot", outPath))

	for _, p := range drawn {
		fmt.Println(p)
	}
	if len(drawn) < total {
		fmt.Printf("... and %d more (re-run with --max-paths 0 for all)\n", total-len(drawn))
	}
	fmt.Printf("%d shortest path(s) of %d move(s); graph written to %s\n",
		total, res.TargetDist, outPath)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
