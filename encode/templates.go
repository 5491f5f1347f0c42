package encode

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"f2v/config"
	"f2v/state"
)

// Values is a struct that holds variables we make available for output name
// template expansion
type Values struct {
	Name   string
	FPS    float64
	Width  int
	Height int
	Date   string
}

// expandOutputName expands the configured output_name_template. Path
// separators are not allowed in the result - output always lands directly in
// the destination directory.
func expandOutputName(name string, width, height int, env *state.LocalEnv) (string, error) {
	tmpl, err := template.New(string(config.OutputNameTemplateFieldName)).
		Funcs(sprig.FuncMap()).
		Parse(env.Cfg.Video.OutputNameTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse output name template: %w", err)
	}

	values := Values{
		Name:   name,
		FPS:    env.Cfg.Video.FPS,
		Width:  width,
		Height: height,
		Date:   time.Now().Format("2006-01-02"),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", fmt.Errorf("unable to expand output name template: %w", err)
	}

	expanded := strings.TrimSpace(buf.String())
	if strings.ContainsAny(expanded, `/\`) {
		return "", fmt.Errorf("output name template produced path separators: %q", expanded)
	}
	return expanded, nil
}
