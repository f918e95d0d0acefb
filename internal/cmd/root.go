package cmd

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/findfiles/internal/config"
	"github.com/harrison/findfiles/internal/display"
	"github.com/harrison/findfiles/internal/fileutil"
	"github.com/harrison/findfiles/internal/logger"
	"github.com/harrison/findfiles/internal/search"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// variadicFlags accept several space separated values after one flag.
var variadicFlags = []string{"skip", "suffix"}

// NewRootCommand creates and returns the findfiles command
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

// newRootCommand builds the command over fsys; nil means the real file system.
func newRootCommand(fsys fileutil.FileSystem) *cobra.Command {
	var flags config.Flags

	cmd := &cobra.Command{
		Use:   "findfiles ROOT QUERY",
		Short: "Recursively search files for a phrase or regular expression",
		Long: `findfiles walks ROOT and prints every line that contains QUERY.

By default QUERY is a literal, case-sensitive phrase. With --regexp it is a
regular expression and matches are grouped by matched text; add --whole-line
to print the matching lines instead.

--skip and --suffix take one or more values:
  findfiles . TODO --skip node_modules .git --suffix .go .md

Place ROOT and QUERY before the variadic flags, or repeat the flag
(--skip a --skip b).`,
		Version:       Version,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1], flags, fsys, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().BoolVar(&flags.Regexp, "regexp", false, "treat QUERY as a regular expression")
	cmd.Flags().BoolVar(&flags.WholeLine, "whole-line", false, "with --regexp, print matching lines instead of grouped matches")
	cmd.Flags().StringArrayVar(&flags.Skip, "skip", nil, "directory names whose subtrees are not searched")
	cmd.Flags().StringArrayVar(&flags.Suffix, "suffix", nil, "only search files whose names end with one of these suffixes")
	cmd.Flags().BoolVar(&flags.Quiet, "quiet", false, "do not print skipped folders and files")
	cmd.Flags().BoolVar(&flags.Quieter, "quieter", false, "like --quiet, and do not print files without matches")
	cmd.Flags().BoolVar(&flags.Gitignore, "gitignore", false, "skip files matched by ROOT/.gitignore")
	cmd.Flags().StringVar(&flags.Color, "color", config.ColorAuto, "color output: auto, always, never")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "warn", "diagnostic log level: trace, debug, info, warn, error")
	cmd.MarkFlagsMutuallyExclusive("quiet", "quieter")

	return cmd
}

func runSearch(root, query string, flags config.Flags, fsys fileutil.FileSystem, out, errOut io.Writer) error {
	cfg, err := config.New(root, query, flags)
	if err != nil {
		return err
	}

	s, err := search.New(cfg, search.Options{
		FileSystem: fsys,
		Output:     out,
		Style:      display.NewStyle(useColor(cfg.Color, out)),
		Logger:     logger.NewConsoleLogger(errOut, cfg.LogLevel),
	})
	if err != nil {
		return err
	}

	_, err = s.Run()
	return err
}

// useColor resolves --color against the output writer.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ExpandVariadicFlags rewrites "--skip a b c" into "--skip=a --skip=b --skip=c"
// so the flag parser sees one value per flag. Values are consumed until the
// next argument that starts with "-".
func ExpandVariadicFlags(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, ok := variadicName(arg)
		if !ok {
			out = append(out, arg)
			continue
		}

		j := i + 1
		for ; j < len(args) && !strings.HasPrefix(args[j], "-"); j++ {
			out = append(out, "--"+name+"="+args[j])
		}
		if j == i+1 {
			// No value follows; let the parser report it.
			out = append(out, arg)
		}
		i = j - 1
	}
	return out
}

func variadicName(arg string) (string, bool) {
	for _, name := range variadicFlags {
		if arg == "--"+name {
			return name, true
		}
	}
	return "", false
}
