package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nextcore/glint/cmd/glint/internal/config"
	"github.com/nextcore/glint/cmd/glint/internal/templates"
)

func init() {
	RegisterCommand(&Command{
		Name:  "gen",
		Short: "Scaffold the demo context and components into a project",
		Long: `Scaffold the hooks demo into an existing Go module.

This command writes:
  - context/theme.go           theme store + distribution wrapper
  - components/counter_card.go counter with title-sync and scoped ticker
  - components/width_card.go   width toggle with layout measurement

It then splices the context and components imports and a WithTheme
re-export into app.go. If app.go is missing it is written whole; if it
exists but doesn't match the expected pattern, a warning is printed and
the file is left untouched.`,
		Usage: "glint gen [directory]",
		Run:   runGen,
	})
}

// generatedFiles maps embedded templates to their fixed output paths.
var generatedFiles = []struct {
	templatePath string
	destPath     string
}{
	{"gen/theme.go.tmpl", filepath.Join("context", "theme.go")},
	{"gen/counter_card.go.tmpl", filepath.Join("components", "counter_card.go")},
	{"gen/width_card.go.tmpl", filepath.Join("components", "width_card.go")},
}

// entryAnchor is the line in a pristine entry file that gen replaces with
// the scaffolded composition.
const entryAnchor = "return widgets.Column()"

func runGen(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	dir = filepath.Clean(dir)

	resolved, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	return Generate(dir, resolved)
}

// Generate writes the scaffold files and updates the entry file. It is
// called by both gen and watch.
func Generate(dir string, resolved *config.Resolved) error {
	data := templates.Data{
		ModulePath: resolved.ModulePath,
		AppName:    resolved.AppName,
	}

	for _, file := range generatedFiles {
		dest := filepath.Join(dir, file.destPath)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
		}
		content, err := templates.Render(file.templatePath, data)
		if err != nil {
			return err
		}
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", dest, err)
		}
		fmt.Printf("  wrote %s\n", file.destPath)
	}

	return spliceEntry(dir, data)
}

// spliceEntry updates app.go: a missing entry file is written whole from
// the template, a recognized one gets the imports and re-export spliced in,
// and anything else is left untouched with a warning.
func spliceEntry(dir string, data templates.Data) error {
	entryPath := filepath.Join(dir, "app.go")

	raw, err := os.ReadFile(entryPath)
	if os.IsNotExist(err) {
		content, renderErr := templates.Render("gen/app.go.tmpl", data)
		if renderErr != nil {
			return renderErr
		}
		if writeErr := os.WriteFile(entryPath, []byte(content), 0o644); writeErr != nil {
			return fmt.Errorf("failed to write app.go: %w", writeErr)
		}
		fmt.Println("  wrote app.go")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read app.go: %w", err)
	}

	spliced, ok := SpliceSource(string(raw), data.ModulePath)
	if !ok {
		fmt.Fprintln(os.Stderr, "Warning: app.go does not match the expected pattern; leaving it untouched")
		return nil
	}
	if err := os.WriteFile(entryPath, []byte(spliced), 0o644); err != nil {
		return fmt.Errorf("failed to update app.go: %w", err)
	}
	fmt.Println("  updated app.go")
	return nil
}

// SpliceSource inserts the scaffold imports, the card composition, and the
// WithTheme re-export into entry source. It reports false when the source
// lacks the recognized pattern (an import block and the empty-column
// anchor).
func SpliceSource(source, modulePath string) (string, bool) {
	importStart := strings.Index(source, "import (")
	if importStart < 0 || !strings.Contains(source, entryAnchor) {
		return "", false
	}
	importEnd := strings.Index(source[importStart:], ")")
	if importEnd < 0 {
		return "", false
	}
	importEnd += importStart

	componentsImport := fmt.Sprintf("%q", modulePath+"/components")
	contextImport := fmt.Sprintf("%q", modulePath+"/context")

	var additions strings.Builder
	if !strings.Contains(source, componentsImport) {
		additions.WriteString("\n\t" + componentsImport)
	}
	if !strings.Contains(source, contextImport) {
		additions.WriteString("\n\t" + contextImport)
	}
	if additions.Len() > 0 {
		source = source[:importEnd] + additions.String() + "\n" + source[importEnd:]
	}

	composition := "return context.WithTheme(widgets.Column(\n" +
		"\t\tcomponents.CounterCard{},\n" +
		"\t\tcomponents.WidthCard{},\n" +
		"\t))"
	source = strings.Replace(source, entryAnchor, composition, 1)

	reexport := "var WithTheme = context.WithTheme"
	if !strings.Contains(source, reexport) {
		source = strings.TrimRight(source, "\n") +
			"\n\n// WithTheme is re-exported so callers can wrap additional subtrees.\n" +
			reexport + "\n"
	}

	return source, true
}
