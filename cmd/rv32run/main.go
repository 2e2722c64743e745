// Command rv32run is a single-shot batch runner for RV32 programs: it
// loads a raw binary image into the reference flat-memory host, builds a
// hart with the configured extension set, runs it to completion (cycle
// budget exhausted or an architectural exception raised), and, with
// --verbose, prints the final register file. It is not an interactive
// terminal UI or debugger;
// those are out-of-scope frontends per spec.md §1, so cmd/rv32run never
// grows one.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arhart/rv32hart/config"
	"github.com/arhart/rv32hart/hart"
	"github.com/arhart/rv32hart/hostmem"
	"github.com/arhart/rv32hart/jit"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rv32run",
		Short: "Run an RV32 program against the rv32hart interpreter/JIT core",
	}

	var (
		configPath string
		maxCycles  uint64
		entryAddr  uint32
		useJIT     bool
		verbose    bool
	)

	runCmd := &cobra.Command{
		Use:   "run [binary]",
		Short: "Load a raw binary image and run it to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProgram(args[0], configPath, maxCycles, entryAddr, useJIT, verbose)
		},
	}
	runCmd.Flags().StringVar(&configPath, "config", "", "Path to a TOML config file (default: platform config dir)")
	runCmd.Flags().Uint64Var(&maxCycles, "max-cycles", 0, "Override the configured cycle budget (0 = use config)")
	runCmd.Flags().Uint32Var(&entryAddr, "entry", 0, "Entry point address the program is loaded at and starts from (0 = use config load_addr)")
	runCmd.Flags().BoolVar(&useJIT, "jit", false, "Force the threaded-code JIT backend on, overriding config")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the final register file")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("rv32run %s (commit %s, built %s)\n", Version, Commit, Date)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, versionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runProgram(path, configPath string, maxCyclesFlag uint64, entryAddr uint32, forceJIT, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied binary path is the tool's whole job
	if err != nil {
		return fmt.Errorf("failed to read program %q: %w", path, err)
	}

	loadAddr := cfg.Memory.LoadAddr
	if entryAddr != 0 {
		loadAddr = entryAddr
	}

	mem := hostmem.New(cfg.Memory.SizeBytes)
	if err := mem.LoadBytes(loadAddr, data); err != nil {
		return fmt.Errorf("failed to load program into memory: %w", err)
	}

	onEcall := func(h *hart.Hart, pc, inst uint32) {
		if verbose {
			fmt.Fprintf(os.Stderr, "ecall at 0x%08x (a7=%d)\n", pc, h.Reg(17))
		}
	}
	onEbreak := func(h *hart.Hart, pc, inst uint32) {
		if verbose {
			fmt.Fprintf(os.Stderr, "ebreak at 0x%08x\n", pc)
		}
	}

	opts := extensionOptions(cfg)
	if forceJIT || cfg.Run.JIT {
		opts = append(opts, hart.WithJIT(jit.New()))
	}

	h := hart.New(hostmem.NewIO(mem, onEcall, onEbreak), nil, opts...)
	h.Reset(loadAddr)
	if cfg.Run.DefaultSP != 0 {
		h.SetReg(2, cfg.Run.DefaultSP)
	}

	cycles := cfg.Run.MaxCycles
	if maxCyclesFlag != 0 {
		cycles = maxCyclesFlag
	}

	if err := h.Step(context.Background(), cycles); err != nil {
		return fmt.Errorf("run aborted: %w", err)
	}

	if h.Exception() != hart.ExceptionNone {
		fmt.Fprintf(os.Stderr, "exception: %s at pc=0x%08x\n", h.Exception(), h.PC())
	}

	if verbose {
		printRegisters(h)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func extensionOptions(cfg *config.Config) []hart.Option {
	var opts []hart.Option
	if cfg.Extensions.M {
		opts = append(opts, hart.WithM())
	}
	if cfg.Extensions.A {
		opts = append(opts, hart.WithA())
	}
	if cfg.Extensions.F {
		opts = append(opts, hart.WithF())
	}
	if cfg.Extensions.Zicsr {
		opts = append(opts, hart.WithZicsr())
	}
	if cfg.Extensions.Zifencei {
		opts = append(opts, hart.WithZifencei())
	}
	return opts
}

func printRegisters(h *hart.Hart) {
	fmt.Printf("PC=0x%08x  cycle=%d  exception=%s\n", h.PC(), h.Cycle(), h.Exception())
	for i := 0; i < 32; i += 4 {
		fmt.Printf("x%-2d=0x%08x  x%-2d=0x%08x  x%-2d=0x%08x  x%-2d=0x%08x\n",
			i, h.Reg(i), i+1, h.Reg(i+1), i+2, h.Reg(i+2), i+3, h.Reg(i+3))
	}
}
