// Command suffixtree is a small command-line driver for the suffixtree
// package. It is not part of the library's public contract; it exists to
// make the package's behavior visible from a terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	suffixtree "github.com/m-bronnikov/Suffix-tree"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var alphabetName string

	root := &cobra.Command{
		Use:   "suffixtree <text> <pattern>",
		Short: "Build a suffix tree over text and report where pattern occurs",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alphabet, err := resolveAlphabet(alphabetName)
			if err != nil {
				return err
			}

			text, pattern := args[0], args[1]
			ix, err := suffixtree.Build([]byte(text), alphabet)
			if err != nil {
				return err
			}

			idx := ix.IndexOf([]byte(pattern))
			fmt.Fprintf(cmd.OutOrStdout(), "contains: %v\n", idx != -1)
			fmt.Fprintf(cmd.OutOrStdout(), "index: %d\n", idx)

			occ := ix.Occurrences([]byte(pattern))
			fmt.Fprintf(cmd.OutOrStdout(), "occurrences: %v\n", occ)
			return nil
		},
	}

	root.Flags().StringVar(&alphabetName, "alphabet", "ascii", "alphabet to build over: ascii, lowercase, dna")
	return root
}

func resolveAlphabet(name string) (suffixtree.Alphabet, error) {
	switch name {
	case "ascii":
		return suffixtree.ASCIIPrintableAlphabet(), nil
	case "lowercase":
		return suffixtree.LowercaseAlphabet(), nil
	case "dna":
		return suffixtree.DNAAlphabet(), nil
	default:
		return suffixtree.Alphabet{}, fmt.Errorf("unknown alphabet %q: want ascii, lowercase, or dna", name)
	}
}
