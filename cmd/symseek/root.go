package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/symseek/pkg/config"
	"github.com/arthur-debert/symseek/pkg/detect"
	"github.com/arthur-debert/symseek/pkg/locate"
	"github.com/arthur-debert/symseek/pkg/logging"
	"github.com/arthur-debert/symseek/pkg/output"
	"github.com/arthur-debert/symseek/pkg/resolver"
	"github.com/arthur-debert/symseek/pkg/style"
	"github.com/arthur-debert/symseek/pkg/types"
)

// Version information, set at build time via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbosity  int
	formatFlag string
	noColor    bool

	rootCmd = &cobra.Command{
		Use:   "symseek <name>",
		Short: "Trace what a command ultimately executes",
		Long: `symseek follows a binary or file name through every layer of
indirection: symlinks, generated wrapper scripts and binary wrappers,
printing the full resolution chain.

A name containing a path separator is treated as a path, absolute or
relative to the current directory; a bare name is traced for every
match on PATH.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format: auto, term, text or json")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

func run(target string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// A styles override file is optional
	if _, err := os.Stat(config.StylesPath()); err == nil {
		if err := output.LoadStyles(config.StylesPath()); err != nil {
			return err
		}
	}

	formatName := formatFlag
	if formatName == "" {
		formatName = cfg.Format
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}
	format = format.Resolve(os.Stdout)
	if (noColor || cfg.NoColor) && format == output.FormatTerminal {
		format = output.FormatText
	}

	location, err := locate.FindFile(target)
	if err != nil {
		return err
	}

	r := resolver.New(detect.Detectors(cfg.StoreRoot)...)
	chains := make([]*types.SymlinkChain, 0, len(location.Paths))
	for _, path := range location.Paths {
		chain, err := r.Resolve(path)
		if err != nil {
			return err
		}
		chains = append(chains, chain)
	}

	return output.NewRenderer(os.Stdout, format).Render(chains, location.Source)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", style.Bold("symseek"), version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `To load completions:

Bash:
  $ source <(symseek completion bash)

Zsh:
  $ symseek completion zsh > "${fpath[1]}/_symseek"

Fish:
  $ symseek completion fish | source

PowerShell:
  PS> symseek completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return nil
	},
}
