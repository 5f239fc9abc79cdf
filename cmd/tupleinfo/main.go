// Command tupleinfo evaluates tuple operations from the command line and
// reports which block kernels the running CPU selects.
//
// Usage:
//
//	tupleinfo [flags] op operand...
//
// Operands are comma-separated components (1,2,3). A single number is
// broadcast to every component.
//
// Examples:
//
//	tupleinfo add 1,2,3 4,5,6
//	tupleinfo fma 1,2 3 0.5,0.5
//	tupleinfo -tol 1e-4 equals-em 1,2,3 1,2,3.00001
//	tupleinfo -list
//	tupleinfo -features
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-tuple/internal/blockops/registry"
	"github.com/cwbudde/algo-tuple/internal/cpu"
	"github.com/cwbudde/algo-tuple/scalar"
	"github.com/cwbudde/algo-tuple/tuple"

	_ "github.com/cwbudde/algo-tuple/internal/blockops/arch/generic"
	_ "github.com/cwbudde/algo-tuple/internal/blockops/arch/vecmath"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks errors that should print usage and exit with exitUsage.
var errUsage = errors.New("usage")

type predicate struct {
	name     string
	operands int
	eval     func(tol float32, n tuple.Arity, in []tuple.Source[float32]) bool
}

// Predicates ending in -em compare within -tol; the others are exact.
var predicates = []predicate{
	{"equals", 2, func(_ float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.Equals(n, in[0], in[1])
	}},
	{"equals-em", 2, func(tol float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.EqualsEM(tol, n, in[0], in[1])
	}},
	{"is-zero", 1, func(_ float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.IsZero(n, in[0])
	}},
	{"is-zero-em", 1, func(tol float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.IsZeroEM(tol, n, in[0])
	}},
	{"is-finite", 1, func(_ float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.IsFinite(n, in[0])
	}},
	{"is-infinite", 1, func(_ float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.IsInfinite(n, in[0])
	}},
	{"is-nan", 1, func(_ float32, n tuple.Arity, in []tuple.Source[float32]) bool {
		return tuple.IsNaN(n, in[0])
	}},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tupleinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	list := fs.Bool("list", false, "list available operations")
	features := fs.Bool("features", false, "print CPU features and block kernel selection")
	tol := fs.Float64("tol", scalar.Tolerance6, "tolerance for equals-em and is-zero-em (1e-4, 1e-6 and 1e-8 are the usual tiers)")
	arity := fs.Int("n", 0, "tuple arity (2, 3 or 4); inferred from the operands when 0")
	generic := fs.Bool("generic", false, "report kernel selection as if SIMD were disabled")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tupleinfo [flags] op operand...\n\n")
		fmt.Fprintf(stderr, "Evaluates one tuple operation. Operands are comma-separated\n")
		fmt.Fprintf(stderr, "components; a single number is broadcast.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  tupleinfo add 1,2,3 4,5,6\n")
		fmt.Fprintf(stderr, "  tupleinfo -tol 1e-4 equals-em 1,2 1,2.00001\n")
		fmt.Fprintf(stderr, "  tupleinfo -list\n")
		fmt.Fprintf(stderr, "  tupleinfo -features\n")
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	var err error
	switch {
	case *list:
		err = printList(stdout)
	case *features:
		err = printFeatures(stdout, *generic)
	default:
		err = evaluate(stdout, fs.Args(), float32(*tol), *arity)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(stderr, "error: %v\n", err)
		fs.Usage()
		return exitUsage
	default:
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitError
	}
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Operation\tKind\tOperands\n")
	fmt.Fprintf(tw, "---------\t----\t--------\n")
	for _, op := range tuple.BinaryOps() {
		fmt.Fprintf(tw, "%s\tbinary\t2\n", op)
	}
	for _, op := range tuple.TernaryOps() {
		fmt.Fprintf(tw, "%s\tternary\t3\n", op)
	}
	for _, op := range tuple.UnaryOps() {
		fmt.Fprintf(tw, "%s\tunary\t1\n", op)
	}
	for _, p := range predicates {
		fmt.Fprintf(tw, "%s\tpredicate\t%d\n", p.name, p.operands)
	}
	return tw.Flush()
}

func printFeatures(w io.Writer, forceGeneric bool) error {
	f := cpu.DetectFeatures()
	if forceGeneric {
		f.ForceGeneric = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "SSE2\t%t\n", f.HasSSE2)
	fmt.Fprintf(tw, "AVX\t%t\n", f.HasAVX)
	fmt.Fprintf(tw, "AVX2\t%t\n", f.HasAVX2)
	fmt.Fprintf(tw, "AVX-512\t%t\n", f.HasAVX512)
	fmt.Fprintf(tw, "NEON\t%t\n", f.HasNEON)
	fmt.Fprintf(tw, "ForceGeneric\t%t\n", f.ForceGeneric)
	fmt.Fprintf(tw, "\nBackend\tLevel\tPriority\tSelected\n")
	fmt.Fprintf(tw, "-------\t-----\t--------\t--------\n")

	selected := registry.Global.Lookup(f)
	for _, e := range registry.Global.ListEntries() {
		mark := ""
		if selected != nil && e.Name == selected.Name {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", e.Name, e.SIMDLevel, e.Priority, mark)
	}
	return tw.Flush()
}

func evaluate(w io.Writer, args []string, tol float32, arity int) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing operation", errUsage)
	}
	name := strings.ToLower(strings.TrimSpace(args[0]))
	operands := args[1:]

	if op, ok := tuple.ParseBinaryOp(name); ok {
		n, in, err := parseOperands(operands, 2, arity)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, tuple.ApplyNew(op, n, in[0], in[1]))
		return err
	}
	if op, ok := tuple.ParseTernaryOp(name); ok {
		n, in, err := parseOperands(operands, 3, arity)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, tuple.Apply3New(op, n, in[0], in[1], in[2]))
		return err
	}
	if op, ok := tuple.ParseUnaryOp(name); ok {
		n, in, err := parseOperands(operands, 1, arity)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, tuple.ApplyUnaryNew(op, n, in[0]))
		return err
	}
	for _, p := range predicates {
		if p.name != name {
			continue
		}
		n, in, err := parseOperands(operands, p.operands, arity)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, p.eval(tol, n, in))
		return err
	}
	return fmt.Errorf("%w: unknown operation %q (use -list to see available)", errUsage, name)
}

// parseOperands parses want operands and settles the arity: the explicit
// one when arity > 0, otherwise the component count of the operands.
func parseOperands(args []string, want, arity int) (tuple.Arity, []tuple.Source[float32], error) {
	if len(args) != want {
		return 0, nil, fmt.Errorf("%w: expected %d operands, got %d", errUsage, want, len(args))
	}

	comps := make([][]float32, len(args))
	for i, arg := range args {
		c, err := parseComponents(arg)
		if err != nil {
			return 0, nil, err
		}
		comps[i] = c
	}

	if arity == 0 {
		for _, c := range comps {
			if len(c) > 1 {
				arity = len(c)
				break
			}
		}
	}
	n := tuple.Arity(arity)
	if !n.Valid() {
		return 0, nil, fmt.Errorf("%w: cannot use arity %d; pass a 2-4 component tuple or -n", errUsage, arity)
	}

	in := make([]tuple.Source[float32], len(comps))
	for i, c := range comps {
		switch len(c) {
		case 1:
			in[i] = tuple.Broadcast(c[0])
		case n.Len():
			in[i] = tuple.Values[float32](c)
		default:
			return 0, nil, fmt.Errorf("%w: operand %d has %d components, want %d", errUsage, i+1, len(c), n.Len())
		}
	}
	return n, in, nil
}

func parseComponents(s string) ([]float32, error) {
	fields := strings.Split(s, ",")
	out := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad component %q in %q", errUsage, f, s)
		}
		out[i] = float32(v)
	}
	return out, nil
}
