package cmd

import (
	"fmt"

	"github.com/emberkit/ember/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "routes",
		Short: "List configured routes",
		Long: `List the routes declared in ember.yaml with their page titles
and icons, sorted by path.

Routes without a title use app.title.`,
		Usage: "ember routes",
		Run:   runRoutes,
	})
}

func runRoutes(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q\n\nUsage: ember routes", args[0])
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Fprintf(stdout, "Project: %s (%s)\n", cfg.AppName, cfg.ModulePath)
	fmt.Fprintf(stdout, "Mount:   #%s\n", cfg.Mount)
	fmt.Fprintln(stdout)
	if len(cfg.Routes) == 0 {
		fmt.Fprintf(stdout, "No routes in %s; pages writes a single entry for /.\n", config.FileName)
		return nil
	}

	fmt.Fprintln(stdout, "Routes:")
	for _, rt := range cfg.Routes {
		line := fmt.Sprintf("  %-14s %s", rt.Path, rt.Title)
		if rt.Icon != "" {
			line += fmt.Sprintf(" [%s]", rt.Icon)
		}
		fmt.Fprintln(stdout, line)
	}
	return nil
}
