package markup

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Built-in macros available in every new context:
//
//	[!upper]shout[/]   -> SHOUT
//	[!lower]Quiet[/]   -> quiet
//	[!title]a title[/] -> A Title
//	[!time(15:04)]     -> current time, Go reference layout argument
func registerBuiltinMacros(ctx *Context) {
	titleCaser := cases.Title(language.Und)

	ctx.DefineFunc("upper", func(text string, _ []string) (string, error) {
		return strings.ToUpper(text), nil
	})

	ctx.DefineFunc("lower", func(text string, _ []string) (string, error) {
		return strings.ToLower(text), nil
	})

	ctx.DefineFunc("title", func(text string, _ []string) (string, error) {
		return titleCaser.String(text), nil
	})

	ctx.DefineFunc("time", func(text string, args []string) (string, error) {
		layout := time.RFC3339
		if len(args) > 0 && args[0] != "" {
			layout = args[0]
		}
		return strings.ReplaceAll(text, "{time}", time.Now().Format(layout)), nil
	})
}
