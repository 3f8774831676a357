/*
Minnow renders source-anchored parse error reports from failure facts given on
the command line. It is a debugging aid for grammar authors: it rebuilds the
exact report a matcher-produced error would render, without needing to run the
matcher, so report layout and rule display names can be checked in isolation.

Usage:

	minnow [flags]

The source text is read from stdin, or from a file when -f is given. The flags
are:

	-v/--version
		Give the current version of minnow and then exit.

	-f/--file [FILE]
		Read the source text from FILE instead of stdin.

	-o/--offset [N]
		Byte offset of the failure in the source text. Defaults to 0.

	-e/--expected [RULE,...]
		Rules the matcher expected at the failure point.

	-u/--unexpected [RULE,...]
		Rules the matcher rejected at the failure point.

	-m/--message [TEXT]
		Report an explicit message instead of rule sets.

	--span [START:END]
		Anchor the message to the region START:END of the source instead of
		to a single offset. Requires -m.

	-r/--rules [FILE]
		Load a TOML table of display names from FILE and rename rules with
		it before rendering.

	--indent [N]
		Indent the printed report by N spaces.

	-i/--interactive
		Read failure directives interactively and print a report for each.
		Type "help" at the prompt for the directive format.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dekarrin/minnow"
	"github.com/dekarrin/minnow/internal/input"
	"github.com/dekarrin/minnow/internal/version"
	"github.com/dekarrin/minnow/pos"
	"github.com/dekarrin/minnow/rulenames"
	"github.com/dekarrin/rosed"
	"github.com/spf13/pflag"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates an unsuccessful program execution due to a
	// problem with the arguments it was called with.
	ExitUsageError

	// ExitInputError indicates an unsuccessful program execution due to an
	// issue reading the source text or the rule names file.
	ExitInputError
)

var (
	returnCode = ExitSuccess

	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of minnow and then exit.")
	flagFile        = pflag.StringP("file", "f", "", "Read the source text from the given file instead of stdin.")
	flagOffset      = pflag.IntP("offset", "o", 0, "Byte offset of the failure in the source text.")
	flagExpected    = pflag.StringSliceP("expected", "e", nil, "Rules the matcher expected at the failure point.")
	flagUnexpected  = pflag.StringSliceP("unexpected", "u", nil, "Rules the matcher rejected at the failure point.")
	flagMessage     = pflag.StringP("message", "m", "", "Report an explicit message instead of rule sets.")
	flagSpan        = pflag.String("span", "", "Anchor the message to the region START:END of the source.")
	flagRules       = pflag.StringP("rules", "r", "", "Rename rules with the TOML display-name table in the given file.")
	flagIndent      = pflag.Int("indent", 0, "Indent the printed report by the given number of spaces.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Read failure directives interactively.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			// we are panicking, make sure we dont lose the panic just because
			// we checked
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("minnow v%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitUsageError
		return
	}

	source, err := readSource(*flagFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		returnCode = ExitInputError
		return
	}

	var renderer func(string) string
	if *flagRules != "" {
		table, err := rulenames.LoadFile(*flagRules)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			returnCode = ExitInputError
			return
		}
		renderer = rulenames.Renderer[string](table)
	}

	if *flagInteractive {
		runInteractive(source, renderer)
		return
	}

	facts := failureFacts{
		offset:     *flagOffset,
		span:       *flagSpan,
		expected:   *flagExpected,
		unexpected: *flagUnexpected,
		message:    *flagMessage,
	}

	errVal, err := facts.toError(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nDo -h for help.\n", err)
		returnCode = ExitUsageError
		return
	}

	printReport(errVal, renderer)
}

// failureFacts is the raw failure state gathered from flags or from an
// interactive directive, before it is assembled into an error value.
type failureFacts struct {
	offset     int
	span       string
	expected   []string
	unexpected []string
	message    string
}

// toError assembles the facts into the error shape they select: a custom
// message with a span, a custom message at a position, or a parse error built
// from the rule sets.
func (ff failureFacts) toError(source string) (*minnow.Error[string], error) {
	if ff.span != "" {
		if ff.message == "" {
			return nil, fmt.Errorf("a span anchor requires a message")
		}

		start, end, err := parseSpan(ff.span)
		if err != nil {
			return nil, err
		}
		return minnow.NewSpanError[string](ff.message, pos.NewSpan(source, start, end)), nil
	}

	at := pos.New(source, ff.offset)

	if ff.message != "" {
		return minnow.NewCustomError[string](ff.message, at), nil
	}

	return minnow.NewParseError(ff.expected, ff.unexpected, at), nil
}

// parseSpan reads a START:END pair of byte offsets.
func parseSpan(s string) (start, end int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("span %q is not in START:END format", s)
	}

	start, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("span start %q is not a number", parts[0])
	}
	end, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("span end %q is not a number", parts[1])
	}

	return start, end, nil
}

func readSource(file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read source from stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(data), nil
}

func printReport(errVal *minnow.Error[string], renderer func(string) string) {
	if renderer != nil {
		errVal = errVal.RenamedRules(renderer)
	}

	report := errVal.Error()
	if *flagIndent > 0 {
		report = rosed.Edit(report).
			WithOptions(rosed.Options{
				IndentStr:                " ",
				NoTrailingLineSeparators: true,
			}).
			Indent(*flagIndent).
			String()
	}

	fmt.Println(report)
}

const interactiveHelp = "Each directive is a single line of space-separated words: " +
	"\"at OFFSET\" anchors the failure, \"expected A,B\" and \"unexpected C,D\" give " +
	"rule sets, \"span START:END\" anchors to a region, and \"msg TEXT\" uses an " +
	"explicit message in place of rule sets (it consumes the rest of the line). " +
	"Type \"quit\" to leave."

// runInteractive reads failure directives one line at a time and prints a
// report for each. Readline-backed editing is used where possible, falling
// back to direct reads when stdin cannot support it.
func runInteractive(source string, renderer func(string) string) {
	var rd input.LineReader

	rd, err := input.NewInteractiveReader("minnow> ")
	if err != nil {
		rd = input.NewDirectReader(os.Stdin)
	}
	defer rd.Close()

	for {
		line, err := rd.ReadLine()
		if err == io.EOF {
			return
		} else if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			returnCode = ExitInputError
			return
		}

		switch strings.ToLower(line) {
		case "quit", "exit":
			return
		case "help":
			fmt.Println(rosed.Edit(interactiveHelp).Wrap(80).String())
			continue
		}

		facts, err := parseDirective(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}

		errVal, err := facts.toError(source)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}

		printReport(errVal, renderer)
	}
}

// parseDirective reads one interactive line of failure facts.
func parseDirective(line string) (failureFacts, error) {
	var facts failureFacts

	fields := strings.Fields(line)
	for i := 0; i < len(fields); i++ {
		word := strings.ToLower(fields[i])

		if word == "msg" {
			if i+1 >= len(fields) {
				return facts, fmt.Errorf("directive %q requires text after it", word)
			}
			facts.message = strings.Join(fields[i+1:], " ")
			break
		}

		if i+1 >= len(fields) {
			return facts, fmt.Errorf("directive %q requires a value after it", word)
		}
		value := fields[i+1]
		i++

		switch word {
		case "at":
			offset, err := strconv.Atoi(value)
			if err != nil {
				return facts, fmt.Errorf("offset %q is not a number", value)
			}
			facts.offset = offset
		case "expected":
			facts.expected = strings.Split(value, ",")
		case "unexpected":
			facts.unexpected = strings.Split(value, ",")
		case "span":
			facts.span = value
		default:
			return facts, fmt.Errorf("unknown directive %q; type \"help\" for the format", word)
		}
	}

	return facts, nil
}
