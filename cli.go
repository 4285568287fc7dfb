package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"slede8/emu/log"
)

type mode byte

const (
	runMode    mode = iota // run a program to completion
	debugMode              // interactive debugger
	disasmMode             // static disassembly
	infosMode              // program file infos
	versionMode
)

type (
	CLI struct {
		Run     Run     `cmd:"" help:"Run a SLEDE8 program." default:"true"`
		Debug   Debug   `cmd:"" help:"Debug a SLEDE8 program interactively."`
		Disasm  Disasm  `cmd:"" help:"Disassemble a SLEDE8 program."`
		Infos   Infos   `cmd:"" help:"Show program file infos."`
		Version Version `cmd:"" help:"Show slede8 version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Run struct {
		ProgramPath string `arg:"" name:"/path/to/program" help:"${program_help}" required:"true" type:"existingfile"`
		InputPath   string `arg:"" name:"/path/to/input" help:"${input_help}" optional:"" type:"existingfile"`

		Trace     *outfile `name:"trace" help:"Write execution trace." placeholder:"FILE|stdout|stderr"`
		State     *outfile `name:"state" help:"Write final machine state as JSON." placeholder:"FILE|stdout|stderr"`
		MaxCycles uint64   `name:"max-cycles" help:"Stop after this many executed instructions." default:"0"`
	}

	Debug struct {
		ProgramPath string `arg:"" name:"/path/to/program" required:"true" type:"existingfile"`
		InputPath   string `arg:"" name:"/path/to/input" help:"${input_help}" optional:"" type:"existingfile"`
	}

	Disasm struct {
		ProgramPath string `arg:"" name:"/path/to/program" required:"true" type:"existingfile"`

		Raw bool `name:"raw" help:"Show instruction bytes next to each line."`
	}

	Infos struct {
		ProgramPath string `arg:"" name:"/path/to/program" required:"true" type:"existingfile"`
	}

	Version struct{}
)

var vars = kong.Vars{
	"program_help": "SLEDE8 binary (.SLEDE8 signature optional, raw images accepted).",
	"input_help":   "File with the input bytes fed to the program (default: empty).",
	"log_help":     "Enable logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("slede8"),
		kong.Description("SLEDE8 emulator, debugger and disassembler."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch {
	case strings.HasPrefix(ctx.Command(), "debug"):
		cfg.mode = debugMode
	case strings.HasPrefix(ctx.Command(), "disasm"):
		cfg.mode = disasmMode
	case strings.HasPrefix(ctx.Command(), "infos"):
		cfg.mode = infosMode
	case ctx.Command() == "version":
		cfg.mode = versionMode
	default:
		cfg.mode = runMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	if strings.HasPrefix(ctx.Command(), "run") || strings.HasPrefix(ctx.Command(), "debug") {
		loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
		var strs []string
		for _, m := range log.ModuleNames() {
			strs = append(strs, "    - "+m)
		}

		fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	}

	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
