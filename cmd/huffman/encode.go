package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/red2fred2/huffman/pkg/huffman"
	"github.com/spf13/cobra"
)

var codingCmds = []*cobra.Command{
	{
		Use:                "encode [flags]",
		Short:              "Encode a text file and report its bit length",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			encodeCommand(args)
		},
	},
	{
		Use:                "table [flags]",
		Short:              "Print the code table learned from a text file",
		DisableFlagParsing: true,
		Run: func(cmd *cobra.Command, args []string) {
			tableCommand(args)
		},
	},
}

func encodeCommand(args []string) {
	flagSet := flag.NewFlagSet("encode", flag.ExitOnError)
	charsetFlag := flagSet.String("charset", "utf-8", "Input charset: utf-8, win1251 or latin1")
	bitsFlag := flagSet.Bool("bits", false, "Also print the encoded bits as 0/1 characters")
	flagSet.Usage = func() {
		println("Usage: huffman encode [-charset cs] [-bits] [--] <file>\n")
		println("Build a Huffman code from the file's symbol frequencies,")
		println("encode the file against it and report the bit length\n")
		println("Arguments:")
		flagSet.PrintDefaults()
		println("  file")
		println("        Text file to encode\n")
	}

	flagSet.Parse(args)
	if !flagSet.Parsed() {
		log.Fatalln("Invalid arguments for 'encode' command. " +
			"Try 'encode -h' for more information")
	}
	if flagSet.NArg() < 1 {
		log.Fatalln("Not enough arguments for 'encode' command. " +
			"Try 'encode -h' for more information")
	}

	text := readTextFile(flagSet.Arg(0), *charsetFlag)

	tree, err := huffman.New(text)
	if err != nil {
		log.Fatalf("Failed to build Huffman tree: %s", err)
	}
	encoded, err := tree.Encode(text)
	if err != nil {
		log.Fatalf("Failed to encode text: %s", err)
	}

	log.Debugf("Alphabet of %d symbols from %d input symbols",
		len(tree.Symbols()), len([]rune(text)))
	if *bitsFlag {
		fmt.Println(encoded)
	}
	fmt.Printf("%d bits\n", encoded.Len())
}

func tableCommand(args []string) {
	flagSet := flag.NewFlagSet("table", flag.ExitOnError)
	charsetFlag := flagSet.String("charset", "utf-8", "Input charset: utf-8, win1251 or latin1")
	flagSet.Usage = func() {
		println("Usage: huffman table [-charset cs] [--] <file>\n")
		println("Build a Huffman code from the file's symbol frequencies")
		println("and print each symbol's code, shortest first\n")
		println("Arguments:")
		flagSet.PrintDefaults()
		println("  file")
		println("        Text file to learn the code from\n")
	}

	flagSet.Parse(args)
	if !flagSet.Parsed() {
		log.Fatalln("Invalid arguments for 'table' command. " +
			"Try 'table -h' for more information")
	}
	if flagSet.NArg() < 1 {
		log.Fatalln("Not enough arguments for 'table' command. " +
			"Try 'table -h' for more information")
	}

	text := readTextFile(flagSet.Arg(0), *charsetFlag)

	tree, err := huffman.New(text)
	if err != nil {
		log.Fatalf("Failed to build Huffman tree: %s", err)
	}

	syms := tree.Symbols()
	sort.Slice(syms, func(i, j int) bool {
		ci, _ := tree.Code(syms[i])
		cj, _ := tree.Code(syms[j])
		if ci.Len() != cj.Len() {
			return ci.Len() < cj.Len()
		}
		return syms[i] < syms[j]
	})

	fmt.Printf("%-8s %s\n", "Symbol", "Code")
	for _, sym := range syms {
		code, _ := tree.Code(sym)
		fmt.Printf("%-8q %s\n", sym, code)
	}
}
