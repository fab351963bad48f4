package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const scriptsDir = "internal/scripts"

const tmpl = `package scripts

import (
	"interactq/internal/engine"
	"interactq/internal/interaction"
)

type {{.Name}} struct {
	engine.BaseComponent
	Message string
	Weight  int
}

func (s *{{.Name}}) Descriptor() (interaction.Descriptor, bool) {
	return interaction.Descriptor{Message: s.Message, Weight: s.Weight}, true
}

func (s *{{.Name}}) OnStart(interactor *engine.GameObject) interaction.Result {
	// TODO: implement behavior
	return interaction.Success
}

func (s *{{.Name}}) OnFinish(interactor *engine.GameObject) interaction.Result {
	return interaction.Success
}

func (s *{{.Name}}) OnInterrupt(interruptor, interactor *engine.GameObject) interaction.Result {
	return interaction.Success
}

func (s *{{.Name}}) OnForce(interactor *engine.GameObject) interaction.Result {
	return s.OnStart(interactor)
}

func init() {
	engine.RegisterScript("{{.Name}}", {{.Lower}}Factory)
}

func {{.Lower}}Factory(props map[string]any) engine.Component {
	return &{{.Name}}{
		Message: engine.PropString(props, "message", "{{.Name}}"),
		Weight:  int(engine.PropFloat(props, "weight", 0)),
	}
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript VendingMachine\n")
		os.Exit(1)
	}

	name := os.Args[1]
	outPath, err := scaffold(scriptsDir, name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Interactive script \"%s\" registered. Add it to a scene object:\n\n", name)
	fmt.Printf("  - type: Script\n")
	fmt.Printf("    name: %s\n", name)
	fmt.Printf("    props:\n")
	fmt.Printf("      message: Use\n")
	fmt.Printf("      weight: 1\n")
}

// scaffold writes a new interactive script into dir and returns its path.
func scaffold(dir, name string) (string, error) {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return "", fmt.Errorf("script name must start with an uppercase letter")
	}

	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]
	outPath := filepath.Join(dir, toSnakeCase(name)+".go")

	if _, err := os.Stat(outPath); err == nil {
		return "", fmt.Errorf("%s already exists", outPath)
	}

	content := tmpl
	content = strings.ReplaceAll(content, "{{.Name}}", name)
	content = strings.ReplaceAll(content, "{{.Lower}}", lower)

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
