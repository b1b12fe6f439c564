package cmd

import (
	"fmt"
	"os"

	"github.com/go-strut/strut/pkg/uidl"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Parse a UI document without laying it out",
		Long: `Parse and validate a YAML UI document: node kinds, size-spec
strings, enum names, and grid placement blocks. No layout runs.`,
		Usage: "strut validate <file.yaml> [file.yaml ...]",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one document is required\n\nUsage: strut validate <file.yaml>")
	}

	failed := 0
	for _, path := range args {
		if _, err := uidl.Load(path); err != nil {
			failed++
			fmt.Fprintln(os.Stderr, warnStyle.Render(fmt.Sprintf("%s: %v", path, err)))
			continue
		}
		fmt.Printf("%s %s\n", textStyle.Render(path), rectStyle.Render("ok"))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}
