package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// docsCmd regenerates the Markdown docs for the command tree.
var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate Markdown documentation for dnamatch",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		if err := doc.GenMarkdownTree(RootCmd, "./docs"); err != nil {
			log.Fatalf("failed to generate docs: %v", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(docsCmd)
}
