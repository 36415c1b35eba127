package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chinese-developer/Hodgepodge/cmd/bindgen/internal/config"
)

const starterConfig = `# bindgen configuration.
# All keys are optional; the values below are the defaults.

# Generated filename, written into each scanned package.
#output: properties_gen.go

# Prefix for generated variable names.
#prefix: Property

# Import path of the observe package.
#observeImport: ` + config.DefaultObserveImport + `

# Packages scanned when "bindgen gen" is run without arguments.
#packages:
#  - ./player
#  - ./settings
`

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a starter bindgen.yaml",
		Long: `Write a commented starter bindgen.yaml to the module root.

The command refuses to overwrite an existing bindgen.yaml.`,
		Usage: "bindgen init",
		Run:   runInit,
	})
}

func runInit(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("init takes no arguments\n\nUsage: bindgen init")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	path := filepath.Join(root, "bindgen.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
