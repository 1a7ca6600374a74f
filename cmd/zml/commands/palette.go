package commands

import (
	"fmt"
	"os"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/zenith/pkg/errors"
	"github.com/arthur-debert/zenith/pkg/markup"
	"github.com/arthur-debert/zenith/pkg/palette"
	"github.com/arthur-debert/zenith/pkg/ui"
)

func newPaletteCmd() *cobra.Command {
	var (
		strategyName string
		format       string
	)

	cmd := &cobra.Command{
		Use:   "palette <seed>",
		Short: MsgPaletteShort,
		Long:  MsgPaletteLong,
		Example: `  zml palette "#4A7A9F"
  zml palette "#4A7A9F" --strategy analogous
  zml palette "#4A7A9F" --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := strategyByName(strategyName)
			if err != nil {
				return err
			}

			p, err := palette.FromHex(args[0], strategy)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("", err))
				return err
			}

			if format == "yaml" || format == "toml" {
				return writePaletteMapping(cmd, p, format)
			}

			ctx := markup.NewContext()
			p.Alias(ctx)

			colorFlag, _ := cmd.Flags().GetString("color")
			level, err := ui.ResolveLevel(colorFlag, os.Stdout)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatBold("PALETTE "+strings.ToUpper(args[0])))

			swatch, err := markup.NewRenderer(ctx, level).Render(p.RenderMarkup())
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.FormatError("", err))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), swatch)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", "triadic", "Palette strategy: triadic, analogous or tetradic")
	cmd.Flags().StringVar(&format, "format", "swatch", "Output format: swatch, toml or yaml")

	return cmd
}

func strategyByName(name string) (palette.Strategy, error) {
	switch strings.ToLower(name) {
	case "", "triadic":
		return palette.Triadic, nil
	case "analogous":
		return palette.Analogous, nil
	case "tetradic":
		return palette.Tetradic, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unknown strategy %q; expected triadic, analogous or tetradic", name)
	}
}

// writePaletteMapping emits the palette's name->hex mapping as an
// [aliases] block, for pasting into config files or sharing with other
// tools.
func writePaletteMapping(cmd *cobra.Command, p *palette.Palette, format string) error {
	mapping := p.Mapping()

	out := make(map[string]string, len(mapping))
	for name, c := range mapping {
		out[name] = c.Hex()
	}
	doc := map[string]map[string]string{"aliases": out}

	var (
		data []byte
		err  error
	)
	if format == "toml" {
		data, err = gotoml.Marshal(doc)
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
