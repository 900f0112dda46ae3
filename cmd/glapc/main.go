// Command glapc parses its arguments against an archiver-like schema and prints
// what it understood. It is meant to try command lines by hand:
//
//	glapc compress -vvv --output=out.bin file1 file2
//	glapc x --into /tmp --format ZIP archive.zip
//
// GLAP_LANG (or LANG) selects the language of error messages.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/napalu/glap"
	"github.com/napalu/glap/errs"
	"github.com/napalu/glap/i18n"
	"github.com/napalu/glap/resolve"
	"github.com/napalu/glap/util"
	"golang.org/x/text/language"
)

const (
	exitOK     = 0
	exitSchema = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, os.Getenv))
}

func newProgram() (*glap.Program, error) {
	return glap.NewProgramWith("glapc",
		glap.WithCommand(glap.NewCommand("compress",
			glap.WithCommandShort('c'),
			glap.WithCommandDescription("Compress files into an archive"),
			glap.WithParameters(
				glap.NewFlag("verbose", glap.WithShort('v')),
				glap.NewFlag("debug", glap.WithShort('d'), glap.WithMax(2)),
				glap.NewFlag("force", glap.WithShort('f'), glap.WithMax(1)),
				glap.NewValue("output", glap.WithShort('o'), glap.WithValidator(resolve.NotEmpty())),
				glap.NewValue("level", glap.WithShort('l'),
					glap.WithValidator(resolve.Pattern(`[1-9]`)),
					glap.WithResolver(resolve.Int(0)),
					glap.WithDefaultValue("6")),
				glap.NewValues("exclude", glap.WithShort('x'), glap.WithMax(8)),
				glap.NewInputs(glap.WithName("files"))))),
		glap.WithCommand(glap.NewCommand("extract",
			glap.WithCommandShort('x'),
			glap.WithCommandDescription("Extract an archive"),
			glap.WithParameters(
				glap.NewFlag("debug", glap.WithShort('d'), glap.WithMax(2)),
				glap.NewValue("into", glap.WithShort('i'), glap.SetRequired(true)),
				glap.NewValue("format",
					glap.WithValidator(resolve.Enum("tar", "zip")),
					glap.WithResolver(resolve.EnumValue("tar", "zip")),
					glap.WithDefaultValue("tar")),
				glap.NewValue("newer-than", glap.WithResolver(resolve.Time())),
				glap.NewValue("timeout", glap.WithShort('t'), glap.WithResolver(resolve.Duration())),
				glap.NewValue("id", glap.WithResolver(resolve.UUID())),
				glap.NewInput(glap.WithName("archive"))))),
		glap.WithFirstCommandAsDefault(),
		glap.WithRequiredCheck())
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	color.NoColor = !util.UseColor(util.DefaultTerminal, stderr, getenv)
	lang := languageOf(getenv)

	program, err := newProgram()
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("invalid schema: %v", err))
		return exitSchema
	}

	res, err := program.Parse(args)
	if err != nil {
		red := color.New(color.FgRed)
		var pe *errs.PositionedError
		if errors.As(err, &pe) {
			red.Fprintln(stderr, pe.Format(i18n.NewBundleMessageProviderFor(i18n.Default(), lang)))
		} else {
			red.Fprintln(stderr, err)
		}
		return exitUsage
	}

	logger := newLogger(stderr, res.Command.Occurrences("debug"))
	logger.Info("parsed",
		"program", res.Program,
		"command", res.Command.Name,
		"by_default", res.Command.ByDefault,
		"language", lang.String())

	printCommand(stdout, res.Command, logger)

	return exitOK
}

func newLogger(w io.Writer, debug int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case debug >= 2:
		level = slog.LevelDebug
	case debug == 1:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printCommand(w io.Writer, cmd *glap.ParsedCommand, logger *slog.Logger) {
	name := color.New(color.FgCyan, color.Bold)
	fmt.Fprintln(w, name.Sprint(cmd.Name))

	cmd.Each(func(key string, p glap.ParsedParameter) {
		logger.Debug("parameter", "name", key, "kind", p.Kind().String(), "seen", p.Seen())
		switch v := p.(type) {
		case *glap.ParsedFlag:
			if v.Occurrences > 0 {
				fmt.Fprintf(w, "  %s: %d\n", name.Sprint(key), v.Occurrences)
			}
		case *glap.ParsedValue:
			if v.IsSet || v.IsDefault {
				suffix := ""
				if v.IsDefault {
					suffix = color.YellowString(" (default)")
				}
				fmt.Fprintf(w, "  %s: %v%s\n", name.Sprint(key), v.Resolved, suffix)
			}
		case *glap.ParsedValues:
			if v.Len() > 0 {
				fmt.Fprintf(w, "  %s: %v\n", name.Sprint(key), v.Resolved())
			}
		}
	})
}

// languageOf is the language error messages are rendered in for the given environment
func languageOf(getenv func(string) string) language.Tag {
	return i18n.Default().Match(getenv("GLAP_LANG"), getenv("LANG"))
}
