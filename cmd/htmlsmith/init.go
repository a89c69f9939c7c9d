package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/htmlsmith-dev/htmlsmith/internal/config"
)

func initCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create an htmlsmith.yaml in a directory",
		Long: `Create a project configuration file with default settings.

Examples:
  htmlsmith init
  htmlsmith init my-site --name my-site`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(dir, name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name")

	return cmd
}

func runInit(dir, name string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if config.Exists(dir) {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}

	cfg := config.New()
	if name != "" {
		cfg.Name = name
	} else if abs, err := filepath.Abs(dir); err == nil {
		cfg.Name = filepath.Base(abs)
	}

	path := filepath.Join(dir, config.FileName)
	if err := cfg.SaveTo(path); err != nil {
		return err
	}

	success("Created %s", path)
	info("Run 'htmlsmith demo' to generate a sample page")
	return nil
}
