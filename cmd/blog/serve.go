package main

import (
	"github.com/spf13/cobra"

	"github.com/angelikatyborska/blog"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := blog.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		return blog.New(cfg).Start()
	},
}
