package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jenian/envguard/internal/analyzer"
	"github.com/jenian/envguard/internal/config"
	"github.com/jenian/envguard/internal/envfile"
	"github.com/jenian/envguard/internal/generator"
	"github.com/jenian/envguard/internal/output"
	"github.com/jenian/envguard/internal/scanner"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ErrIssuesFound is returned when --ci or --strict thresholds are breached.
// It maps to exit code 1 without an error message.
var ErrIssuesFound = errors.New("environment variable issues found")

type options struct {
	ci         bool
	strict     bool
	jsonOutput bool
	generate   bool
	quiet      bool
	debug      bool
	noColor    bool
	ignore     []string
	envFiles   []string
	exclude    []string
}

// NewRootCommand builds the envguard command tree
func NewRootCommand(version string) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "envguard [directory]",
		Short: "Find missing, unused, and undocumented environment variables",
		Long: "Scans source code for environment variable references and compares them " +
			"with the variables declared in .env files.",
		Example: `  envguard                     Scan current directory
  envguard ./my-app --ci       Scan with CI mode (fails on missing)
  envguard -g                  Generate .env.example
  envguard --json              Machine-readable output`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, opts)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.ci, "ci", false, "Exit with code 1 if missing variables are found")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with code 1 on missing or unused variables (implies --ci)")
	flags.BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")
	flags.BoolVarP(&opts.generate, "generate", "g", false, "Generate .env.example from code references")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Only output when there are issues")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flags.StringArrayVar(&opts.ignore, "ignore", nil, "Skip directories whose name contains this string (can repeat)")
	flags.StringArrayVar(&opts.envFiles, "env-file", nil, "Env file to check instead of the defaults (can repeat)")
	flags.StringSliceVar(&opts.exclude, "exclude", nil, "Glob patterns to exclude")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "init-config",
		Short: "Create a " + config.FileName + " file in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.WriteTemplate(".")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	})

	return rootCmd
}

// Execute runs the command line and returns the process exit code
func Execute(version string) int {
	if err := NewRootCommand(version).Execute(); err != nil {
		if !errors.Is(err, ErrIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func setupLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

func runScan(cmd *cobra.Command, args []string, opts *options) error {
	stdout := cmd.OutOrStdout()
	log := setupLogger(cmd.ErrOrStderr(), opts.debug)
	if opts.noColor {
		output.SetColor(false)
	}

	path := "."
	if len(args) > 0 {
		path = args[0]
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		log.Warnf("Cannot access %s: %v", absPath, err)
	}

	cfg, err := config.LoadConfig(absPath)
	if err != nil {
		log.Warnf("Failed to load %s: %v", config.FileName, err)
		cfg = config.Default()
	}

	fileScanner := scanner.NewScanner(log)
	fileScanner.AddIgnorePatterns(opts.ignore)
	fileScanner.AddIgnorePatterns(cfg.Ignores.Folders)
	if len(opts.exclude) > 0 {
		fileScanner.SetExcludeGlobs(opts.exclude)
	}

	log.Debugf("Scanning %s", absPath)
	refs, err := fileScanner.ScanProject(cmd.Context(), absPath)
	if err != nil {
		return fmt.Errorf("failed to scan directory: %w", err)
	}

	if opts.generate {
		return runGenerate(stdout, absPath, refs, opts.quiet)
	}

	envLoader := envfile.NewLoader(log)
	if len(opts.envFiles) > 0 {
		envLoader.SetEnvFiles(opts.envFiles)
	} else {
		envLoader.SetEnvFiles(cfg.EnvFiles)
	}
	table := envLoader.Load(absPath)

	result := analyzer.Analyze(refs, table).WithoutIgnored(cfg.Ignores.Missing)
	hasIssues := output.HasIssues(result, opts.strict)

	switch {
	case opts.jsonOutput:
		if err := output.JSON(stdout, result); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	case !opts.quiet || hasIssues:
		if err := output.Report(stdout, result); err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
	}

	if (opts.ci || opts.strict) && hasIssues {
		return ErrIssuesFound
	}
	return nil
}

func runGenerate(w io.Writer, dir string, refs []analyzer.Reference, quiet bool) error {
	if quiet {
		_, err := io.WriteString(w, generator.Generate(refs))
		return err
	}

	path, err := generator.WriteFile(dir, refs)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "✓ Generated %s with %d variables\n", path, len(refs))
	return nil
}
