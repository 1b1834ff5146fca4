package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version string = "master" // Replaced by linker, see Makefile
var log = logrus.New()

func main() {
	log.SetLevel(logrus.InfoLevel)

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version of huffman",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "huffman",
		Short: "Huffman learns a prefix-free code from a text and encodes it",
	}
	rootCmd.AddCommand(cmdVersion)
	for _, cmd := range codingCmds {
		rootCmd.AddCommand(cmd)
	}
	rootCmd.Execute()
}
