package main

import (
	"flag"
	"log"
	"os"
	"slices"
	"strings"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/abonite/mcasm/directive"
	"github.com/abonite/mcasm/internal"
	"github.com/abonite/mcasm/isa"
	"github.com/abonite/mcasm/preset"
	"github.com/abonite/mcasm/source"
)

// defines collects repeated -D flags.
type defines []string

func (d *defines) String() string {
	return strings.Join(*d, ",")
}

func (d *defines) Set(value string) error {
	*d = append(*d, value)
	return nil
}

func main() {
	var input string
	var isaFile string
	var presetFile string
	var defs defines
	var verbose bool
	var dump bool

	flag.StringVar(&input, "i", "", "Assembly source file")
	flag.StringVar(&isaFile, "t", "", "Instruction set .toml file")
	flag.StringVar(&presetFile, "p", "", "Starlark .star file of predefined settings")
	flag.Var(&defs, "D", "Predefine a setting, NAME=VALUE (repeatable)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "dump", false, "Dump the directive pass result")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(input) == 0 {
		log.Fatalf("%v: -i is required", os.Args[0])
	}

	dp := &directive.Processor{Verbose: verbose}

	if len(presetFile) != 0 {
		settings, err := preset.Load(presetFile, nil)
		if err != nil {
			log.Fatalf("%v: %v", presetFile, err)
		}
		for name, value := range settings.All() {
			dp.Predefine(name, value)
		}
	}

	var setupErrs []error
	for _, def := range defs {
		name, value, err := directive.ParseSetting(def)
		if err != nil {
			setupErrs = append(setupErrs, &flagError{Flag: "-D " + def, Err: err})
			continue
		}
		dp.Predefine(name, value)
	}

	var set *isa.Set
	if len(isaFile) != 0 {
		var err error
		set, err = isa.LoadFile(isaFile)
		if err != nil {
			log.Fatalf("%v: %v", isaFile, err)
		}
	}

	inf, err := os.Open(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	defer inf.Close()

	lines, err := source.Split(inf)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	res := dp.Process(lines)

	if verbose && set != nil {
		for _, line := range res.Instructions {
			def, ok := set.Lookup(strings.Fields(line.Text)[0])
			if ok {
				log.Printf("%v [%v %#03x]\n", line, def.Class, def.Opcode)
			} else {
				log.Printf("%v [?]\n", line)
			}
		}
	}

	if dump {
		printer := pp.New()
		printer.SetColoringEnabled(term.IsTerminal(int(os.Stdout.Fd())))
		printer.Println(res)
	}

	failed := false
	for err := range internal.SeqConcat(slices.Values(setupErrs), slices.Values(res.Errors)) {
		log.Printf("%v: %v", input, err)
		failed = true
	}
	if failed {
		os.Exit(1)
	}
}
