package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zenith/internal/version"
	"github.com/arthur-debert/zenith/pkg/config"
	"github.com/arthur-debert/zenith/pkg/logging"
	"github.com/arthur-debert/zenith/pkg/markup"
	"github.com/arthur-debert/zenith/pkg/ui"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		colorFlag  string
		configPath string
		escape     bool
	)

	rootCmd := &cobra.Command{
		Use:     "zml [markup...]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("", err))
				return err
			}

			ctx := markup.NewContext()
			if err := cfg.Apply(ctx); err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("", err))
				return err
			}

			levelName := colorFlag
			if !cmd.Flags().Changed("color") && cfg.Render.Color != "" {
				levelName = cfg.Render.Color
			}
			level, err := ui.ResolveLevel(levelName, os.Stdout)
			if err != nil {
				return err
			}

			out, diags, err := markup.NewRenderer(ctx, level).RenderDiagnostics(input)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError(input, err))
				return err
			}

			if len(diags) > 0 {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FormatDiagnostics(input, diags))
			}

			if escape {
				out = strconv.Quote(out)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", MsgFlagColor)
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", MsgFlagConfig)
	rootCmd.Flags().BoolVarP(&escape, "escape", "e", false, MsgFlagEscape)

	rootCmd.AddCommand(newPaletteCmd())
	rootCmd.AddCommand(newDocsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// readInput returns the markup to render: the joined positional args, or
// stdin when none are given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}

	input := strings.TrimSuffix(string(data), "\n")
	if input == "" {
		_ = cmd.Help()
		return "", fmt.Errorf("no markup given")
	}
	return input, nil
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}
}
