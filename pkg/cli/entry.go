// Package cli is the radix command-line driver: the lex/parse/check/emit
// command tree over the compile pipeline, with the JSON interchange
// output for tokens and statement summaries. The command layout follows
// the pack's cobra idiom (playbymail-ottomap's var-per-command tree with
// a single Execute wire-up) rather than the teacher's hand-rolled
// argument switch; the driver/pipeline split itself mirrors
// funvibe-funxy/pkg/cli/entry.go.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/radixlang/radix/internal/ast"
	"github.com/radixlang/radix/internal/config"
	"github.com/radixlang/radix/internal/diagnostics"
	"github.com/radixlang/radix/internal/pipeline"
	"github.com/radixlang/radix/internal/session"
	"github.com/radixlang/radix/internal/source"
)

// errExit signals a nonzero exit after output has already been written.
var errExit = errors.New("exit")

var (
	emitTarget string
	showStats  bool
)

var cmdRoot = &cobra.Command{
	Use:           "radix",
	Short:         "compiler front-end and code generator for the radix language",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

// runRoot handles a bare "radix" invocation: usage goes to stderr and
// the process exits 1 (spec.md §6). An unrecognized subcommand never
// reaches here; cobra rejects it with an "unknown command" error that
// Execute relays to stderr with the same exit code.
func runRoot(cmd *cobra.Command, args []string) error {
	fmt.Fprint(os.Stderr, cmd.UsageString())
	return errExit
}

var cmdLex = &cobra.Command{
	Use:   "lex [file]",
	Short: "tokenize a source file and dump tokens as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

var cmdParse = &cobra.Command{
	Use:   "parse [file]",
	Short: "parse a source file and dump a statement summary as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var cmdCheck = &cobra.Command{
	Use:   "check [file]",
	Short: "run the full pipeline through semantic analysis",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var cmdEmit = &cobra.Command{
	Use:   "emit [file]",
	Short: "compile a source file and write generated code to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runEmit,
}

// Execute wires the command tree and runs it, returning the process
// exit code.
func Execute() int {
	project, err := config.LoadProject("radix.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "radix: %v\n", err)
		return 1
	}
	cmdEmit.Flags().StringVarP(&emitTarget, "target", "t", project.DefaultTarget,
		"emit target: "+strings.Join(config.ValidTargets, ", "))
	cmdCheck.Flags().BoolVar(&showStats, "stats", false, "print a diagnostic summary to stderr")
	cmdRoot.AddCommand(cmdLex)
	cmdRoot.AddCommand(cmdParse)
	cmdRoot.AddCommand(cmdCheck)
	cmdRoot.AddCommand(cmdEmit)
	if err := cmdRoot.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(os.Stderr, "radix: %v\n", err)
		}
		return 1
	}
	return 0
}

// readSource resolves the command's file argument; "-" or no argument
// reads stdin. The descriptor is consumed here, before the pipeline
// starts (spec.md §5).
func readSource(args []string) (path, text string, err error) {
	path = "-"
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return path, string(data), nil
}

// jsonSpan serializes a span as a two-element array (spec.md §6).
type jsonSpan source.Span

func (s jsonSpan) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Start, s.End})
}

type jsonToken struct {
	Kind string   `json:"kind"`
	Span jsonSpan `json:"span"`
}

type jsonError struct {
	Message string   `json:"message"`
	Span    jsonSpan `json:"span"`
}

type jsonStmt struct {
	ID   int      `json:"id"`
	Kind string   `json:"kind"`
	Span jsonSpan `json:"span"`
}

func jsonErrors(diags *diagnostics.Bag) []jsonError {
	out := []jsonError{}
	for _, d := range diags.All() {
		if d.Severity == diagnostics.Error {
			out = append(out, jsonError{Message: d.Message, Span: jsonSpan(d.Span)})
		}
	}
	return out
}

// kindLabel caps a token-kind label at 60 characters with an ellipsis
// (spec.md §6).
func kindLabel(s string) string {
	if len(s) > 60 {
		return s[:57] + "..."
	}
	return s
}

func newContext(path, text string) *pipeline.Context {
	sess := session.New()
	return &pipeline.Context{
		Session: sess,
		File:    sess.Sources.AddFile(path, text),
		Diags:   &diagnostics.Bag{SessionID: sess.ID},
	}
}

func runLex(cmd *cobra.Command, args []string) error {
	path, text, err := readSource(args)
	if err != nil {
		return err
	}
	ctx := newContext(path, text)
	pipeline.New(pipeline.LexProcessor{}).Run(ctx)

	tokens := make([]jsonToken, len(ctx.Tokens))
	for i, tok := range ctx.Tokens {
		tokens[i] = jsonToken{Kind: kindLabel(tok.Type.String()), Span: jsonSpan(tok.Span)}
	}
	out := map[string]any{
		"file":    path,
		"success": !ctx.Diags.HasErrors(),
		"tokens":  tokens,
		"errors":  jsonErrors(ctx.Diags),
	}
	writeJSON(out)
	if ctx.Diags.HasErrors() {
		return errExit
	}
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	path, text, err := readSource(args)
	if err != nil {
		return err
	}
	ctx := newContext(path, text)
	pipeline.New(pipeline.LexProcessor{}, pipeline.ParseProcessor{}).Run(ctx)

	stmts := []jsonStmt{}
	if ctx.AST != nil {
		for _, stmt := range ctx.AST.Statements {
			kind := strings.TrimPrefix(fmt.Sprintf("%T", stmt), "*ast.")
			stmts = append(stmts, jsonStmt{ID: int(stmt.ID()), Kind: kind, Span: jsonSpan(stmt.Span())})
		}
	}
	out := map[string]any{
		"file":       path,
		"success":    !ctx.Diags.HasErrors(),
		"statements": stmts,
		"errors":     jsonErrors(ctx.Diags),
	}
	writeJSON(out)
	if ctx.Diags.HasErrors() {
		return errExit
	}
	return nil
}

// analysisProcessors is the semantic half of the pipeline, shared by
// check and emit. The borrow checker joins only when targeting the
// ownership-disciplined language (spec.md §4.6).
func analysisProcessors(borrowChecked bool) []pipeline.Processor {
	procs := []pipeline.Processor{
		pipeline.LexProcessor{},
		pipeline.ParseProcessor{},
		pipeline.ResolveProcessor{},
		pipeline.LowerProcessor{},
		pipeline.CheckProcessor{},
	}
	if borrowChecked {
		procs = append(procs, pipeline.BorrowProcessor{})
	}
	return append(procs,
		pipeline.ExhaustiveProcessor{},
		pipeline.LintProcessor{},
	)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, text, err := readSource(args)
	if err != nil {
		return err
	}
	ctx := newContext(path, text)
	pipeline.New(analysisProcessors(false)...).Run(ctx)
	renderDiags(ctx)
	if showStats {
		nodes := 0
		if ctx.AST != nil {
			ast.Walk(ctx.AST, func(ast.Node) bool {
				nodes++
				return true
			})
		}
		fmt.Fprintf(os.Stderr, "session %s: %s across %s syntax nodes\n", ctx.Session.ID, ctx.Diags.Summary(), humanize.Comma(int64(nodes)))
	}
	if ctx.Diags.HasErrors() {
		return errExit
	}
	return nil
}

func runEmit(cmd *cobra.Command, args []string) error {
	if !config.IsValidTarget(emitTarget) {
		return fmt.Errorf("unknown emit target %q (valid: %s)", emitTarget, strings.Join(config.ValidTargets, ", "))
	}
	path, text, err := readSource(args)
	if err != nil {
		return err
	}
	ctx := newContext(path, text)
	procs := append(analysisProcessors(emitTarget == config.TargetSystems), pipeline.EmitProcessor{Target: emitTarget})
	pipeline.New(procs...).Run(ctx)
	renderDiags(ctx)
	if ctx.Diags.HasErrors() {
		return errExit
	}
	os.Stdout.WriteString(ctx.Output)
	// Interactive runs get a clean prompt line; piped output stays
	// byte-exact.
	if isatty.IsTerminal(os.Stdout.Fd()) && !strings.HasSuffix(ctx.Output, "\n") {
		os.Stdout.WriteString("\n")
	}
	return nil
}

// renderDiags writes accumulated diagnostics to stderr, one line each,
// plus an indented help line for a diagnostic that carries help text.
// The full caret-and-color renderer is an external collaborator; the
// driver only guarantees the stable fields (spec.md §6).
func renderDiags(ctx *pipeline.Context) {
	for _, d := range ctx.Diags.All() {
		file := d.File
		if file == "" && ctx.File != nil {
			file = ctx.File.Path
		}
		pos := ctx.File.Position(d.Span.Start)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s[%s]: %s\n", file, pos.Line, pos.Column, d.Severity, d.Code, d.Message)
		if d.Help != "" {
			fmt.Fprintf(os.Stderr, "  help: %s\n", d.Help)
		}
	}
}

func writeJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}
