package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imagepub",
	Short: "A CLI tool for publishing newsletter issue images",
	Long:  `imagepub copies an image into the issue directory of the image repository, commits a resized copy alongside it, and prints the markdown link for the published file.`,
}

func Execute() error {
	return rootCmd.Execute()
}
