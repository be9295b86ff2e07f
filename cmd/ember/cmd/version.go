package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Print the ember tool version and build time.`,
		Usage: "ember version",
		Run: func([]string) error {
			fmt.Fprintf(stdout, "Ember CLI version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
