// Command mdwrap translates a line oriented markdown document into HTML.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/jcorbin/mdwrap/internal/buildinfo"
	"github.com/jcorbin/mdwrap/internal/cliconfig"
	"github.com/jcorbin/mdwrap/linewrap"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageError marks errors caused by how the command was invoked.
type usageError struct{ error }

func (ue usageError) Unwrap() error { return ue.error }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line, returning the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var ue usageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stderr, buildinfo.Alert("Bad syntax: "+ue.Error()))
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, buildinfo.Get().Long())
		return exitUsage
	}
	fmt.Fprintln(stderr, buildinfo.Alert("[ ERROR ] "+err.Error()))
	return exitError
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var (
		info    = buildinfo.Get()
		cfg     = cliconfig.DefaultConfig()
		cfgPath string
		policy  string
		verbose bool
		quiet   bool
	)

	root := &cobra.Command{
		Use:           info.Name + " [flags] <file.md>",
		Short:         info.Description,
		Long:          info.Title() + "\n\n" + info.Long(),
		Version:       info.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usageError{fmt.Errorf("expected exactly one input file, got %d arguments", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if changed["policy"] {
				p, ok := linewrap.ParsePolicy(policy)
				if !ok {
					return usageError{fmt.Errorf("unknown policy %q", policy)}
				}
				cfg.Policy = p
			}
			if countTrue(verbose, quiet, changed["log-level"]) > 1 {
				return usageError{errors.New("--verbose, --quiet and --log-level are mutually exclusive")}
			}
			switch {
			case verbose:
				cfg.LogLevel = "debug"
				changed["log-level"] = true
			case quiet:
				cfg.LogLevel = "warn"
				changed["log-level"] = true
			}

			if err := loadConfig(&cfg, cfgPath, changed); err != nil {
				return err
			}

			log := cfg.LevelLogger(cliconfig.NewLogger(stderr))
			fmt.Fprintln(stdout, info.Title())

			input := args[0]
			output, err := cfg.OutputPath(input)
			if err != nil {
				return err
			}

			if cfg.Watch {
				return watch(cmd.Context(), log, cfg, input, output)
			}
			_, err = translateFile(log, cfg, input, output)
			return err
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(info.Title() + "\n" + info.Long() + "\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	flags := root.Flags()
	flags.StringVar(&cfgPath, "config", "", "config file (default: nearest "+cliconfig.LocalConfigName+", then $HOME/.mdwrap/config.toml)")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "output file (default: input with its extension replaced)")
	flags.StringVar(&cfg.Ext, "ext", cfg.Ext, "extension of the derived output file")
	flags.StringVar(&policy, "policy", cfg.Policy.String(), "container policy: per-line or span")
	flags.IntVar(&cfg.MaxLineBytes, "max-line-bytes", cfg.MaxLineBytes, "longest accepted input line")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging (conflicts with --quiet and --log-level)")
	flags.BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors (conflicts with --verbose and --log-level)")
	flags.BoolVarP(&cfg.Watch, "watch", "w", cfg.Watch, "retranslate whenever the input changes")
	flags.DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "delay between an input change and retranslation")

	return root
}

func countTrue(bs ...bool) (n int) {
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}

// loadConfig layers the config file and environment under any changed flags.
func loadConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgPath != "" || (cfgFile != "" && cliconfig.FileExists(cfgFile)) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}
	return cfg.Validate()
}
