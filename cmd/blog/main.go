package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "blog",
	Short: "Personal blog and portfolio site engine",
	Long: `blog renders a tree of markdown pages and posts into a personal
website. It can serve the site directly or build it into a static
directory ready for any file host.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "blog.yml", "config file path")
	rootCmd.AddCommand(serveCmd, buildCmd, newCmd, versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the blog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("blog %s\n", version)
	},
}
