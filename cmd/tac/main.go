package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/npillmayer/threeac/engine"
	"github.com/npillmayer/threeac/runtime"
	"github.com/pterm/pterm"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

var errTimeout = errors.New("program timed out")

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	halt := flag.Bool("halt", false, "Halt on first error")
	inputf := flag.String("input", "", "Comma separated numeric inputs p0,p1,…")
	timeout := flag.Duration("timeout", 0, "Abort program after duration (0 = never)")
	digest := flag.Bool("digest", false, "Print fingerprint of output")
	sep := flag.String("sep", "\n", "Line separator")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	inputs, err := parseInputs(*inputf)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	tac := &Tac{inputs: inputs, digest: *digest}
	tac.eng = engine.New(
		engine.HaltOnError(*halt),
		engine.Separator(*sep),
		engine.Debug(tracer().GetTraceLevel() == tracing.LevelDebug),
		engine.WithOutputSink(tac.printRecord),
		engine.WithErrorSink(tac.printFault),
	)
	if flag.NArg() > 0 {
		os.Exit(tac.runFile(flag.Arg(0), *timeout))
	}
	repl, err := readline.New("tac> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	tac.repl = repl
	pterm.Info.Println("Welcome to tac") // colored welcome message
	tracer().Infof("Quit with <ctrl>D")
	tac.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseInputs(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var inputs []float64
	for _, field := range strings.Split(s, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("illegal input %q: %w", field, err)
		}
		inputs = append(inputs, x)
	}
	return inputs, nil
}

// Tac is our interpreter object
type Tac struct {
	eng    *engine.Engine
	repl   *readline.Instance
	inputs []float64
	digest bool
}

func (tac *Tac) printRecord(rec engine.OutputRecord) {
	fmt.Println(rec.Value.String())
}

func (tac *Tac) printFault(f *engine.Fault) {
	pterm.Error.Printf("[%d] %s\n", f.Code(), f.Error())
}

// runFile executes a program file and returns the exit code.
func (tac *Tac) runFile(filename string, timeout time.Duration) int {
	src, err := readSource(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 2
	}
	result, err := tac.run(src, timeout)
	if err != nil {
		pterm.Error.Println(err.Error())
		return 4
	}
	tracer().Infof("result: %s", result)
	if tac.digest {
		pterm.Info.Println(tac.eng.Output().Fingerprint())
	}
	if result.Halted {
		return 1
	}
	return 0
}

// run executes src on a goroutine. With a timeout > 0, run gives up waiting
// for the engine after that duration.
func (tac *Tac) run(src string, timeout time.Duration) (engine.Result, error) {
	done := make(chan engine.Result, 1)
	go func() {
		done <- tac.eng.RunSource(src, tac.inputs)
	}()
	if timeout <= 0 {
		return <-done, nil
	}
	select {
	case result := <-done:
		return result, nil
	case <-time.After(timeout):
		return engine.Result{}, fmt.Errorf("%w after %s", errTimeout, timeout)
	}
}

// readSource reads a program file, honouring a byte order mark.
func readSource(filename string) (string, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("unable to read program file: %w", err)
	}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	src, err := io.ReadAll(transform.NewReader(bytes.NewReader(raw), decoder))
	if err != nil {
		return "", fmt.Errorf("unable to decode program file %s: %w", filename, err)
	}
	return strings.ReplaceAll(string(src), "\r\n", "\n"), nil
}

// REPL starts interactive mode.
func (tac *Tac) REPL() {
	inputs := tac.inputs
	for {
		line, err := tac.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			if quit := tac.command(strings.TrimSpace(line)); quit {
				break
			}
			continue
		}
		result := tac.eng.RunLine(line, inputs, false)
		inputs = nil // bind inputs once
		if result.Returned {
			pterm.Info.Println(result.Value.String())
		}
	}
	println("Good bye!")
}

func (tac *Tac) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":heap":
		tac.showHeap()
	case ":procs":
		procs := tac.eng.Procedures()
		for _, name := range procs.Names() {
			p, _ := procs.Resolve(name)
			pterm.Info.Println(p.String())
		}
	case ":reset":
		tac.eng.RunLine("", nil, true)
		pterm.Info.Println("heap cleared")
	default:
		pterm.Error.Printf("unknown command %s\n", cmd)
	}
	return false
}

// showHeap displays the heap as a tree on the terminal.
func (tac *Tac) showHeap() {
	ll := pterm.LeveledList{}
	tac.eng.Heap().Each(func(name string, v runtime.Value) {
		if arr := v.Array(); arr != nil {
			ll = append(ll, pterm.LeveledListItem{Level: 0, Text: name})
			arr.Each(func(i float64, x runtime.Value) {
				ll = append(ll, pterm.LeveledListItem{
					Level: 1,
					Text:  fmt.Sprintf("[%s] = %s", runtime.Scalar(i), x),
				})
			})
			return
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: name + " = " + v.String()})
	})
	if len(ll) == 0 {
		pterm.Info.Println("heap is empty")
		return
	}
	pterm.Println("heap")
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}
