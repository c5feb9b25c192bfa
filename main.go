package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"go.uber.org/zap"

	"sqz/sqz/lzs"
)

var log = NewLogger(false)

// NewLogger builds the CLI logger. Verbose mode opens up the info level;
// otherwise only warnings and errors get through.
func NewLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

func Ratio(num int, denom int) float32 {
	if denom == 0 {
		return 0.0
	}
	return float32(num) / float32(denom)
}

func Percent(num int, denom int) float32 {
	return 100.0 * Ratio(num, denom)
}

// Describes how a single pack run should behave.
type PackConfig struct {
	verify bool // unpack again and compare
	report bool // print size report to stdout
}

// Pack one text file into the bit-packed format.
func CommandPack(inputPath string, outputPath string, cfg PackConfig) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	symbols, encName, err := DecodeText(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	log.Infof("loaded %s: %d bytes, %d symbols (%s)", inputPath, len(raw), len(symbols), encName)

	packed, stats := lzs.CompressWithStats(symbols)

	if cfg.verify {
		unpacked, err := lzs.DecompressChecked(packed)
		if err != nil {
			return fmt.Errorf("failed to verify pack<->unpack round trip, there is a bug: %w", err)
		}
		if !slices.Equal(unpacked, symbols) {
			return fmt.Errorf("failed to verify pack<->unpack round trip, there is a bug")
		}
		log.Info("verify OK")
	}

	if err := os.WriteFile(outputPath, packed, 0644); err != nil {
		return err
	}

	if cfg.report {
		fmt.Println("===== Complete =====")
		fmt.Printf("Original size:    %6d bytes\n", len(raw))
		fmt.Printf("Symbols:          %6d\n", len(symbols))
		fmt.Printf("Packed size:      %6d bytes (%.1f%%)\n", len(packed), Percent(len(packed), len(raw)))
		fmt.Printf("Dictionary codes: %6d\n", stats.DictSize)
		fmt.Printf("Final width:      %6d bits\n", stats.MaxWidth)
	}
	return nil
}

// Unpack a packed file back to text.
func CommandUnpack(inputPath string, outputPath string, utf16le bool) error {
	packed, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	symbols, err := lzs.DecompressChecked(packed)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	out := EncodeText(symbols, utf16le)
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return err
	}
	log.Infof("unpacked %s: %d bytes -> %d symbols, %d bytes of text",
		inputPath, len(packed), len(symbols), len(out))
	return nil
}

// Report how a file packs, against stock compressors, with optional graphs.
func CommandStats(inputPath string, graphDir string) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	symbols, encName, err := DecodeText(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}
	packed, st := lzs.CompressWithStats(symbols)
	base, err := BaselineCompare(raw)
	if err != nil {
		return err
	}

	fmt.Println("===== Stream =====")
	fmt.Printf("Input:            %6d bytes, %d symbols (%s)\n", len(raw), len(symbols), encName)
	fmt.Printf("Packed size:      %6d bytes (%.1f%%)\n", len(packed), Percent(len(packed), len(raw)))
	fmt.Printf("Literals:         %6d (%d wide)\n", st.Literals, st.WideLiterals)
	fmt.Printf("Back-references:  %6d\n", st.Copies)
	fmt.Printf("Dictionary codes: %6d\n", st.DictSize)
	fmt.Printf("Final width:      %6d bits\n", st.MaxWidth)
	fmt.Println("===== Baselines =====")
	fmt.Printf("zstd:             %6d bytes (%.1f%%)\n", base.Zstd, Percent(base.Zstd, len(raw)))
	fmt.Printf("flate:            %6d bytes (%.1f%%)\n", base.Flate, Percent(base.Flate, len(raw)))

	if graphDir != "" {
		if err := os.MkdirAll(graphDir, 0755); err != nil {
			return err
		}
		if err := GraphWidths(filepath.Join(graphDir, "widths.svg"), st.Widths); err != nil {
			return err
		}
		counts := make(map[int]int)
		for _, w := range st.Widths {
			counts[w]++
		}
		if err := ScatterIntMap(filepath.Join(graphDir, "width_hist.svg"), counts); err != nil {
			return err
		}
		log.Infof("graphs written to %s", graphDir)
	}
	return nil
}

type CliCommand struct {
	fn       func(args []string) error
	flagset  *flag.FlagSet
	argsdesc string // argument description
	desc     string
}

// Describes how to use a given command.
func PrintCmdUsage(name string, cmd CliCommand) {
	fmt.Printf("%s %s - %s\n", name, cmd.argsdesc, cmd.desc)
	fs := cmd.flagset
	var count int = 0
	fs.VisitAll(func(_ *flag.Flag) {
		count++
	})
	if count != 0 {
		fs.Usage()
	}
}

func PrintUsage(commands map[string]CliCommand) {
	fmt.Println()
	fmt.Println("Usage: sqz <command> [arguments]")
	fmt.Println("Commands available:")

	names := []string{}
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := commands[name]
		fmt.Printf("    %-10s %s\n", name, cmd.desc)
	}
}

func main() {
	pack_flags := flag.NewFlagSet("pack", flag.ExitOnError)
	unpack_flags := flag.NewFlagSet("unpack", flag.ExitOnError)
	stats_flags := flag.NewFlagSet("stats", flag.ExitOnError)
	help_flags := flag.NewFlagSet("help", flag.ExitOnError)

	packOptVerbose := pack_flags.Bool("verbose", false, "verbose output")
	packOptVerify := pack_flags.Bool("verify", false, "unpack the result again and compare")
	unpackOptVerbose := unpack_flags.Bool("verbose", false, "verbose output")
	unpackOptUtf16 := unpack_flags.Bool("utf16", false, "write UTF-16LE text instead of UTF-8")
	statsOptGraphs := stats_flags.String("graphs", "", "directory to render SVG graphs into")
	var commands map[string]CliCommand

	cmd_pack := func(args []string) error {
		pack_flags.Parse(args)
		files := pack_flags.Args()
		if len(files) != 2 {
			fmt.Println("'pack' command: expected <input> <output> arguments")
			os.Exit(1)
		}
		if *packOptVerbose {
			log = NewLogger(true)
		}
		cfg := PackConfig{verify: *packOptVerify, report: true}
		return CommandPack(files[0], files[1], cfg)
	}

	cmd_unpack := func(args []string) error {
		unpack_flags.Parse(args)
		files := unpack_flags.Args()
		if len(files) != 2 {
			fmt.Println("'unpack' command: expected <input> <output> arguments")
			os.Exit(1)
		}
		if *unpackOptVerbose {
			log = NewLogger(true)
		}
		return CommandUnpack(files[0], files[1], *unpackOptUtf16)
	}

	cmd_stats := func(args []string) error {
		stats_flags.Parse(args)
		files := stats_flags.Args()
		if len(files) != 1 {
			fmt.Println("'stats' command: expected <input> argument")
			os.Exit(1)
		}
		return CommandStats(files[0], *statsOptGraphs)
	}

	cmd_help := func(args []string) error {
		help_flags.Parse(args)
		names := help_flags.Args()
		if len(names) > 0 {
			cmd, pres := commands[names[0]]
			if !pres {
				fmt.Println("error: unknown command for help")
				PrintUsage(commands)
				os.Exit(1)
			}
			PrintCmdUsage(names[0], cmd)
		} else {
			PrintUsage(commands)
		}
		return nil
	}

	commands = map[string]CliCommand{
		"pack":   {cmd_pack, pack_flags, "<input> <output>", "pack a text file"},
		"unpack": {cmd_unpack, unpack_flags, "<input> <output>", "unpack back to text"},
		"stats":  {cmd_stats, stats_flags, "<input>", "report pack stats and baselines"},
		"help":   {cmd_help, help_flags, "", "list commands or describe a single command"},
	}

	if len(os.Args) < 2 {
		fmt.Println("error: expected a command")
		PrintUsage(commands)
		os.Exit(1)
	}

	cmd, pres := commands[os.Args[1]]
	if !pres {
		fmt.Println("error: unknown command")
		PrintUsage(commands)
		os.Exit(1)
	}

	err := cmd.fn(os.Args[2:])
	if err != nil {
		fmt.Println("Error:", err.Error())
		os.Exit(1)
	}
}
