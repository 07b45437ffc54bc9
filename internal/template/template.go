// Package template renders Apache virtual-host configuration files
// from embedded templates.
package template

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"
)

// Data contains the values rendered into a WSGI vhost config.
type Data struct {
	Site       string // site name, used for process group and log names
	ServerName string // vhost ServerName, defaults to Site
	Script     string // absolute path to the WSGI script
	ScriptDir  string // derived from Script, do not set
	User       string // daemon process user
	Group      string // daemon process group
	Processes  int    // WSGI daemon processes
	LogDir     string // directory for access/error logs
}

// RenderWSGI renders the embedded WSGI virtual-host template.
func RenderWSGI(data Data) (string, error) {
	if data.Site == "" {
		return "", fmt.Errorf("site name is required")
	}
	if data.Script == "" {
		return "", fmt.Errorf("wsgi script path is required")
	}
	if data.ServerName == "" {
		data.ServerName = data.Site
	}
	if data.Processes <= 0 {
		data.Processes = 2
	}
	data.ScriptDir = filepath.Dir(data.Script)

	content, err := templates.ReadFile("templates/wsgi.tmpl")
	if err != nil {
		return "", fmt.Errorf("embedded template missing: %w", err)
	}

	tmpl, err := template.New("wsgi").Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}
