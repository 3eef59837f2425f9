package renderer

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/archigen/archigen/pkg/errors"
)

// jarEnvVar overrides jar discovery.
const jarEnvVar = "PLANTUML_JAR"

// PlantUML renders diagram text by invoking the PlantUML jar.
type PlantUML struct {
	jarPath  string
	javaPath string
}

// NewPlantUML creates a PlantUML renderer. An empty jarPath triggers
// discovery via the PLANTUML_JAR environment variable and a list of
// conventional install locations.
func NewPlantUML(jarPath string) (*PlantUML, error) {
	if jarPath == "" {
		found, err := FindJar()
		if err != nil {
			return nil, err
		}
		jarPath = found
	} else if _, err := os.Stat(jarPath); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "PlantUML jar not found at %s", jarPath)
	}

	java := "java"
	if p, err := exec.LookPath("java"); err == nil {
		java = p
	}
	return &PlantUML{jarPath: jarPath, javaPath: java}, nil
}

// FindJar locates the PlantUML jar. The PLANTUML_JAR environment
// variable wins; otherwise conventional install locations are probed.
func FindJar() (string, error) {
	if env := os.Getenv(jarEnvVar); env != "" {
		if _, err := os.Stat(env); err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "%s points to a missing file: %s", jarEnvVar, env)
		}
		return env, nil
	}

	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, "plantuml", "plantuml.jar"),
			filepath.Join(home, ".plantuml", "plantuml.jar"),
			filepath.Join(home, "bin", "plantuml.jar"),
		)
	}
	candidates = append(candidates,
		"/usr/local/bin/plantuml.jar",
		"/usr/bin/plantuml.jar",
		"/opt/plantuml/plantuml.jar",
		"plantuml.jar",
		filepath.Join("bin", "plantuml.jar"),
		filepath.Join("lib", "plantuml.jar"),
	)

	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", errors.New(errors.ErrCodeRenderFailed, "PlantUML jar not found, set %s or install to a standard location", jarEnvVar)
}

// Render writes the text to a temporary file, runs the jar once per
// requested format and collects the produced images.
func (p *PlantUML) Render(ctx context.Context, text string, formats ...Format) ([]Artifact, error) {
	if len(formats) == 0 {
		formats = []Format{FormatPNG}
	}
	for _, f := range formats {
		if !f.Valid() {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported output format %q", f)
		}
	}

	dir, err := os.MkdirTemp("", "archigen-render-")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "creating work directory")
	}
	defer os.RemoveAll(dir)

	source := filepath.Join(dir, "diagram.puml")
	if err := os.WriteFile(source, []byte(text), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "writing diagram source")
	}

	artifacts := make([]Artifact, 0, len(formats))
	for _, f := range formats {
		if err := p.run(ctx, formatFlag(f), source); err != nil {
			return nil, err
		}
		out := outputPath(source, f)
		data, err := os.ReadFile(out)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeRenderFailed, err, "PlantUML produced no %s output", f)
		}
		artifacts = append(artifacts, Artifact{Format: f, Data: data})
	}
	return artifacts, nil
}

// Check runs the jar in syntax-check mode.
func (p *PlantUML) Check(ctx context.Context, text string) error {
	dir, err := os.MkdirTemp("", "archigen-check-")
	if err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "creating work directory")
	}
	defer os.RemoveAll(dir)

	source := filepath.Join(dir, "diagram.puml")
	if err := os.WriteFile(source, []byte(text), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "writing diagram source")
	}
	return p.run(ctx, "-checkonly", source)
}

func (p *PlantUML) run(ctx context.Context, modeFlag, source string) error {
	cmd := exec.CommandContext(ctx, p.javaPath, "-Djava.awt.headless=true", "-jar", p.jarPath, modeFlag, source)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			msg = err.Error()
		}
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "PlantUML failed: %s", msg)
	}
	return nil
}

func formatFlag(f Format) string {
	return fmt.Sprintf("-t%s", f)
}

// outputPath is the file PlantUML writes next to the source.
func outputPath(source string, f Format) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + "." + string(f)
}

// Ensure PlantUML implements Renderer.
var _ Renderer = (*PlantUML)(nil)
