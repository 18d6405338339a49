// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/awig/config"
	"github.com/ezrec/awig/translate"
)

func main() {
	var desc string
	var outDir string
	var lang string
	var verbose bool

	flag.StringVar(&desc, "c", "", ".star build description to use")
	flag.StringVar(&outDir, "o", "", "Output directory, overrides out_dir()")
	flag.StringVar(&lang, "l", "", "Message language (BCP 47)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if len(desc) == 0 {
		log.Fatalf("%v: no build description (-c)", os.Args[0])
	}

	bld, err := config.Load(desc, nil)
	if err != nil {
		log.Fatal(err)
	}

	bld.Verbose = verbose

	if len(outDir) != 0 {
		bld.OutDir = outDir
	}
	if len(bld.OutDir) == 0 {
		bld.OutDir = "."
	}

	path, err := bld.GenerateAccessors()
	if err != nil {
		log.Fatalf("%v: %v", desc, err)
	}

	fmt.Println(path)
}
