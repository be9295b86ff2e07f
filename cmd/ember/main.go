// Command ember is the Ember project tool. It generates the static entry
// documents of an app and inspects its route configuration.
package main

import (
	"fmt"
	"os"

	"github.com/emberkit/ember/cmd/ember/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
