package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/angelikatyborska/blog"
)

var newPage bool

// postTemplate is the front matter scaffold for new content files.
var postTemplate = template.Must(template.New("post").Parse(`---
title: {{ .Title }}
date: {{ .Date }}
{{- if .Page }}
order: 0
{{- else }}
tags: []
draft: true
{{- end }}
summary: ""
---

`))

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Scaffold a new post (or page with --page)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := blog.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		title := strings.TrimSpace(args[0])
		slug := blog.Slugify(title)
		if slug == "" {
			return fmt.Errorf("title %q produces an empty slug", title)
		}

		subdir := "posts"
		if newPage {
			subdir = "pages"
		}
		path := filepath.Join(cfg.ContentDir, subdir, slug+".md")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		data := struct {
			Title string
			Date  string
			Page  bool
		}{Title: title, Date: time.Now().Format("2006-01-02"), Page: newPage}
		if err := postTemplate.Execute(f, data); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", path)
		return nil
	},
}

func init() {
	newCmd.Flags().BoolVar(&newPage, "page", false, "scaffold a top-level page instead of a post")
}
