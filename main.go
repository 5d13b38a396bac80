package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lookbusy1344/w16asm/assembler"
	"github.com/lookbusy1344/w16asm/config"
	"github.com/lookbusy1344/w16asm/image"
)

// Version information - can be overridden at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func printHelp() {
	fmt.Println("w16asm - two-pass assembler for the W16 machine")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  w16asm <source.asm> <out.bin> [<out.csv>]")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help information")
		showHelp2   = flag.Bool("h", false, "Show help information")
		showVersion = flag.Bool("version", false, "Show version information")
		configPath  = flag.String("config", "", "Path to a w16asm.toml configuration file")
	)

	flag.Parse()

	if *showVersion {
		fmt.Printf("w16asm %s (%s)\n", Version, Commit)
		os.Exit(exitOK)
	}

	if *showHelp || *showHelp2 {
		printHelp()
		os.Exit(exitOK)
	}

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintln(os.Stderr, "Error: expected <source.asm> <out.bin> [<out.csv>]")
		printHelp()
		os.Exit(exitProgramArgumentsInvalid)
	}

	srcPath, binPath := args[0], args[1]
	csvPath := ""
	if len(args) == 3 {
		csvPath = args[2]
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read configuration: %v\n", err)
		os.Exit(exitProgramArgumentsInvalid)
	}
	if csvPath == "" && cfg.Output.EmitSymbolsByDefault {
		csvPath = defaultSymbolPath(binPath, cfg)
	}

	source, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read %s: %v\n", srcPath, err)
		os.Exit(exitCouldNotReadAsmFile)
	}

	result, asmErr := assembler.Assemble(source)
	if asmErr != nil {
		if aerr, ok := asmErr.(*assembler.Error); ok {
			fmt.Fprintln(os.Stderr, aerr.Error())
			os.Exit(exitCodeForError(aerr))
		}
		fmt.Fprintln(os.Stderr, asmErr)
		os.Exit(exitStructuralError)
	}

	if err := image.WriteBinary(binPath, result); err != nil {
		if err == image.ErrProgramEmpty {
			fmt.Fprintln(os.Stderr, "Error: assembled program is empty")
			os.Exit(exitResultProgramEmpty)
		}
		fmt.Fprintf(os.Stderr, "Error: could not write %s: %v\n", binPath, err)
		os.Exit(exitCouldNotWriteBinFile)
	}

	if csvPath != "" {
		if err := image.WriteSymbols(csvPath, result); err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not write %s: %v\n", csvPath, err)
			os.Exit(exitCouldNotWriteSymbolsFile)
		}
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFrom(path)
}

func defaultSymbolPath(binPath string, cfg *config.Config) string {
	ext := filepath.Ext(binPath)
	base := strings.TrimSuffix(binPath, ext)
	return base + cfg.Output.DefaultSymbolExt
}
