package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flowbundle/exprlang/expr"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "eval":
		return evalCommand(args[2:])
	case "fmt":
		return fmtCommand(args[2:])
	case "hash":
		return hashCommand(args[2:])
	case "verify":
		return verifyCommand(args[2:])
	case "repl":
		return runREPL()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func evalCommand(args []string) error {
	fs := flag.NewFlagSet("eval", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	contextPath := fs.String("context", "", "path to a JSON file whose top-level fields seed the evaluation scope")
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if len(remaining) == 0 {
		return errors.New("exprlang eval: expression required")
	}
	source := remaining[0]

	ctx, err := rootContext(*contextPath)
	if err != nil {
		return err
	}

	ast, err := expr.Parse(source)
	if err != nil {
		return err
	}
	result, err := expr.Evaluate(ast, ctx)
	if err != nil {
		return err
	}
	fmt.Println(result.String())
	return nil
}

func hashCommand(args []string) error {
	if len(args) < 2 {
		return errors.New("exprlang hash: algorithm and file required")
	}
	algorithm, path := args[0], args[1]
	value, err := readJSONFile(path)
	if err != nil {
		return err
	}
	checker, err := expr.NewIntegrityChecker(algorithm)
	if err != nil {
		return err
	}
	digest, err := checker.HashValue(value)
	if err != nil {
		return err
	}
	fmt.Println(digest.String())
	return nil
}

func verifyCommand(args []string) error {
	if len(args) < 3 {
		return errors.New("exprlang verify: algorithm, file, and hash required")
	}
	algorithm, path, wantText := args[0], args[1], args[2]
	value, err := readJSONFile(path)
	if err != nil {
		return err
	}
	checker, err := expr.NewIntegrityChecker(algorithm)
	if err != nil {
		return err
	}
	canon, err := expr.Canonicalize(value)
	if err != nil {
		return err
	}
	want, err := expr.ParseContentHash(wantText)
	if err != nil {
		return err
	}
	ok, err := checker.Verify([]byte(canon), want)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("mismatch")
		os.Exit(1)
	}
	fmt.Println("match")
	return nil
}

func readJSONFile(path string) (expr.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return expr.Value{}, fmt.Errorf("read %s: %w", path, err)
	}
	return expr.ParseJSON(string(data))
}

// rootContext builds the scope an `eval` invocation runs against: a
// fresh EvaluationContext over the full builtin registry, with the
// top-level fields of the -context JSON file (if any) bound as
// identifiers.
func rootContext(contextPath string) (*expr.EvaluationContext, error) {
	ctx := expr.NewEvaluationContext(nil).WithRegistry(expr.NewFunctionRegistry())
	if contextPath == "" {
		return ctx, nil
	}
	value, err := readJSONFile(contextPath)
	if err != nil {
		return nil, err
	}
	if value.Kind() != expr.KindObject {
		return nil, errors.New("exprlang eval: -context file must contain a JSON object")
	}
	for _, key := range value.ObjectKeys() {
		v, _ := value.ObjectGet(key)
		ctx.Set(key, v)
	}
	return ctx, nil
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  eval [-context file.json] <expression>")
	fmt.Fprintln(os.Stderr, "    evaluate an expression and print its display form")
	fmt.Fprintln(os.Stderr, "  fmt <expression>")
	fmt.Fprintln(os.Stderr, "    parse an expression and print its canonical rendering")
	fmt.Fprintln(os.Stderr, "  hash <algorithm> <file.json>")
	fmt.Fprintln(os.Stderr, "    print the content hash of a JSON file's canonical form")
	fmt.Fprintln(os.Stderr, "  verify <algorithm> <file.json> <hash>")
	fmt.Fprintln(os.Stderr, "    check a JSON file's canonical form against a content hash")
	fmt.Fprintln(os.Stderr, "  repl")
	fmt.Fprintln(os.Stderr, "    start an interactive evaluation session")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
