package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chinese-developer/Hodgepodge/cmd/bindgen/internal/config"
	"github.com/chinese-developer/Hodgepodge/cmd/bindgen/internal/scan"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Generate property key registrations",
		Long: `Scan package directories for struct fields tagged bind:"<name>" and
write a generated registrations file into each package that has any.

Directories come from the command line, or from the packages list in
bindgen.yaml, or default to the current directory. The output filename,
variable prefix, and observe import path are configurable in
bindgen.yaml at the module root.

Examples:
  bindgen gen
  bindgen gen ./player ./settings`,
		Usage: "bindgen gen [dirs...]",
		Run:   runGen,
	})
}

// runGen scans each requested directory and writes its generated file.
func runGen(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	resolved, err := config.Resolve(root)
	if err != nil {
		return err
	}

	dirs := args
	if len(dirs) == 0 {
		dirs = resolved.Packages
	}
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	generated := 0
	for _, dir := range dirs {
		result, err := scan.Dir(dir)
		if err != nil {
			return err
		}
		if len(result.Properties) == 0 {
			fmt.Printf("  %s: no bind tags, skipped\n", dir)
			continue
		}

		importPath, err := resolved.ImportPath(dir)
		if err != nil {
			// Outside the module (e.g. a submodule example); omit the header line.
			importPath = ""
		}

		data := scan.Emit(result, scan.EmitOptions{
			Prefix:        resolved.Prefix,
			ObserveImport: resolved.ObserveImport,
			ImportPath:    importPath,
		})
		out := scan.OutputPath(result, resolved.Output)
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		fmt.Printf("  %s: %d properties -> %s\n", dir, len(result.Properties), filepath.Base(out))
		generated++
	}

	if generated == 0 {
		fmt.Println("Nothing to generate.")
	}
	return nil
}
