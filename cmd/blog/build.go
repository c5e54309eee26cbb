package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/angelikatyborska/blog"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the site into a static directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := blog.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if err := blog.Build(cfg); err != nil {
			return err
		}
		fmt.Printf("Site built into %s\n", cfg.OutputDir)
		return nil
	},
}
