// Command reduct evaluates untyped lambda calculus programs.
//
// With no argument it runs an interactive REPL reading one formula per
// line. With a file argument it parses the file as a program (zero or
// more `name = formula` definitions followed by a formula), evaluates
// it with side effects enabled and prints every reduction step.
package main

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/KarpelesLab/reduct"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"golang.org/x/term"
)

// defaultMaxSteps bounds evaluation of non-terminating programs; the
// engine itself imposes no bound. Override with REDUCT_MAX_STEPS.
const defaultMaxSteps = 1_000_000

var (
	alphaMarker = color.New(color.FgYellow).Sprint("α")
	betaMarker  = color.New(color.FgGreen).Sprint("β")
	deltaMarker = color.New(color.FgCyan).Sprint("δ")
)

func main() {
	logger := newLogger()
	args := os.Args[1:]
	switch len(args) {
	case 0:
		os.Exit(repl(logger))
	case 1:
		os.Exit(evaluateFile(logger, args[0]))
	default:
		fmt.Printf("Usage: %s [FILE]\n", os.Args[0])
	}
}

func newLogger() hclog.Logger {
	level := hclog.Warn
	if s := os.Getenv("REDUCT_LOG_LEVEL"); s != "" {
		level = hclog.LevelFromString(s)
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "reduct",
		Level:  level,
		Output: os.Stderr,
	})
}

func evaluateFile(logger hclog.Logger, path string) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reduct: %v\n", err)
		return 1
	}

	prog, diags := reduct.ParseProgram(path, string(src))
	printDiagnostics(path, src, diags)
	if prog == nil || diags.HasErrors() {
		return 1
	}

	defs := reduct.NewDefinitions().Add(reduct.Prelude())
	if err := defs.DefineProgram(prog); err != nil {
		fmt.Fprintf(os.Stderr, "reduct: %v\n", err)
		return 1
	}

	logger.Debug("evaluating file", "path", path, "definitions", len(prog.Definitions))
	count, capped := run(prog.Formula, defs, reduct.StandardEffects(os.Stdin, os.Stdout))
	report(count, capped)
	return 0
}

func repl(logger hclog.Logger) int {
	interactive := term.IsTerminal(int(os.Stdin.Fd()))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Println("\nGoodbye ✨")
		os.Exit(0)
	}()

	prompt := color.New(color.FgBlue).Sprint(">> ")
	cont := color.New(color.FgBlue).Sprint(".. ")
	defs := reduct.NewDefinitions().Add(reduct.Prelude())
	effects := reduct.StandardEffects(os.Stdin, os.Stdout)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Print(prompt)
		}
		input, ok := readFormula(scanner, interactive, cont)
		if !ok {
			fmt.Println("Goodbye ✨")
			return 0
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		formula, diags := reduct.ParseFormula("<stdin>", input)
		printDiagnostics("<stdin>", []byte(input), diags)
		if formula == nil {
			continue
		}
		logger.Debug("evaluating formula", "input", input)
		count, capped := run(formula, defs, effects)
		report(count, capped)
	}
}

// readFormula reads one formula, continuing across lines while brackets
// remain unbalanced. It reports false on end of input.
func readFormula(scanner *bufio.Scanner, interactive bool, cont string) (string, bool) {
	var buf strings.Builder
	for {
		if !scanner.Scan() {
			return "", false
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(scanner.Text())
		if parenBalance(buf.String()) <= 0 {
			return buf.String(), true
		}
		if interactive {
			fmt.Print(cont)
		}
	}
}

// parenBalance counts unmatched opening parentheses, ignoring comments.
func parenBalance(s string) int {
	depth := 0
	inComment := false
	for _, r := range s {
		switch {
		case inComment:
			if r == '\n' {
				inComment = false
			}
		case r == '#':
			inComment = true
		case r == '(':
			depth++
		case r == ')':
			depth--
		}
	}
	return depth
}

func run(t reduct.Term, defs *reduct.Definitions, effects reduct.EffectHandler) (count int, capped bool) {
	limit := maxSteps()
	for step := range reduct.EvaluateWithEffects(t, defs, effects) {
		count++
		fmt.Printf("->> %s%s\n", marker(step.Kind), step.Term)
		if count >= limit {
			return count, true
		}
	}
	return count, false
}

func marker(k reduct.StepKind) string {
	switch k {
	case reduct.Alpha:
		return alphaMarker + " "
	case reduct.Beta:
		return betaMarker + " "
	case reduct.Delta:
		return deltaMarker + " "
	}
	return ""
}

func report(count int, capped bool) {
	if capped {
		fmt.Printf("Stopped after %s steps without reaching a normal form\n", humanize.Comma(int64(count)))
		return
	}
	fmt.Printf("Found normal form after %s steps\n", humanize.Comma(int64(count)))
}

func maxSteps() int {
	if s := os.Getenv("REDUCT_MAX_STEPS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return defaultMaxSteps
}

func printDiagnostics(filename string, src []byte, diags hcl.Diagnostics) {
	if len(diags) == 0 {
		return
	}
	files := map[string]*hcl.File{filename: {Bytes: src}}
	wr := hcl.NewDiagnosticTextWriter(os.Stderr, files, 78, !color.NoColor)
	wr.WriteDiagnostics(diags)
}
