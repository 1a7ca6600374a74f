package commands

// User-facing messages for the zml CLI, collected in one place so
// wording stays consistent across commands.
const (
	MsgRootShort = "Render ZML markup into styled terminal output"
	MsgRootLong  = `zml renders a BBCode-like markup language into terminal escape
sequences, so you can style output without hand-writing escape codes:

  zml "Welcome to [bold #4A7A9F]Zenith[/]!"

Markup may also be piped in on stdin. Colors are downsampled to what
the terminal supports, or to the level given with --color.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagColor   = "Color capability: auto, never, 16, 256 or truecolor"
	MsgFlagConfig  = "Config file (default is $XDG_CONFIG_HOME/zml/config.toml)"
	MsgFlagEscape  = "Print the output escaped, for inspecting sequences"

	MsgPaletteShort = "Derive and preview a color palette from a seed color"
	MsgPaletteLong  = `palette derives a full named palette (main colors, semantic colors
and surfaces, each with lighter and darker shades) from a single seed
color and prints a swatch preview. The same names become usable in
markup once declared under [palettes] in the config file.`

	MsgDocsShort = "Read zml documentation in the terminal"
)
