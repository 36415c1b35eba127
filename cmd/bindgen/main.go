// bindgen generates property key registrations from bind struct tags.
package main

import (
	"fmt"
	"os"

	"github.com/chinese-developer/Hodgepodge/cmd/bindgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
