// Package cli implements the linegrep command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/linegrep/linegrep/internal/adapters/driven/console"
	"github.com/linegrep/linegrep/internal/adapters/driven/fs"
	"github.com/linegrep/linegrep/internal/core/domain"
	"github.com/linegrep/linegrep/internal/core/ports/driving"
	"github.com/linegrep/linegrep/internal/core/services"
	"github.com/linegrep/linegrep/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var (
	ignoreCase  bool
	noColor     bool
	verboseFlag bool
)

// searcher is the service behind the root command.
var searcher driving.Searcher = services.NewSearchService(fs.NewSource())

var rootCmd = &cobra.Command{
	Use:   "linegrep <query> <file_path>",
	Short: "Print lines of a file containing a literal substring",
	Long: `linegrep prints every line of a file that contains the query as a
literal substring, one per line, in the order the lines appear.

Matching is case-sensitive and exact: no regular expressions, no
normalisation. Use --ignore-case for Unicode case-insensitive matching.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSearch,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "enable verbose logging to stderr")
	rootCmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "match case-insensitively")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable match highlighting")
}

// Execute runs the root command. Failures are reported on stderr as
// either an argument-resolution problem or an application error; the
// caller maps a non-nil return to exit code 1.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingQuery) || errors.Is(err, domain.ErrMissingFilePath) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Problem parsing arguments: %v\n", err)
	} else {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Application error: %v\n", err)
	}
	return err
}

func runSearch(cmd *cobra.Command, args []string) error {
	logger.SetVerbose(verboseFlag)

	// BuildConfig expects the program name in slot zero; cobra has
	// already stripped it from args.
	cfg, err := domain.BuildConfig(append([]string{cmd.CommandPath()}, args...))
	if err != nil {
		return err
	}

	lines, err := searcher.Search(cmd.Context(), cfg, domain.SearchOptions{IgnoreCase: ignoreCase})
	if err != nil {
		return err
	}

	sink := console.NewSink(cmd.OutOrStdout(), console.Options{
		Color:      useColor(cmd.OutOrStdout()),
		IgnoreCase: ignoreCase,
	})
	return sink.WriteLines(cfg.Query, lines)
}

// useColor enables highlighting only when writing to a real terminal
// and --no-color was not given.
func useColor(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
