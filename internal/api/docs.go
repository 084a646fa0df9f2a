// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

//go:embed openapi/openapi.yaml
var openAPISpec []byte

// # API Documentation

// Docs serves the embedded OpenAPI document and a browsable summary of it.
type Docs struct {
	document *openapi3.T
	specJSON []byte
	page     []byte
}

// docsOperation is one row of the HTML summary.
type docsOperation struct {
	Method     string
	Path       string
	Summary    string
	Parameters []string
}

var docsTemplate = template.Must(template.New("docs").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<h1>{{.Title}} <small>{{.Version}}</small></h1>
<p>{{.Description}}</p>
<p>Machine-readable document: <a href="{{.SpecPath}}">{{.SpecPath}}</a></p>
<table>
<thead><tr><th>Method</th><th>Path</th><th>Summary</th><th>Parameters</th></tr></thead>
<tbody>
{{- range .Operations}}
<tr><td>{{.Method}}</td><td><code>{{.Path}}</code></td><td>{{.Summary}}</td><td>{{range $i, $p := .Parameters}}{{if $i}}, {{end}}<code>{{$p}}</code>{{end}}</td></tr>
{{- end}}
</tbody>
</table>
</body>
</html>
`))

// LoadDocs parses and validates the embedded OpenAPI document.
//
// basePath is where the docs routes are mounted, e.g. "/v0/docs".
func LoadDocs(context context.Context, basePath string) (*Docs, error) {
	loader := openapi3.NewLoader()

	document, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("docs: failed to load OpenAPI document: %w", err)
	}

	if err := document.Validate(context); err != nil {
		return nil, fmt.Errorf("docs: invalid OpenAPI document: %w", err)
	}

	specJSON, err := document.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("docs: failed to encode OpenAPI document: %w", err)
	}

	page, err := renderDocsPage(document, strings.TrimSuffix(basePath, "/")+"/api.json")
	if err != nil {
		return nil, err
	}

	return &Docs{document: document, specJSON: specJSON, page: page}, nil
}

// Document returns the parsed OpenAPI document.
func (docs *Docs) Document() *openapi3.T {
	return docs.document
}

// Routes returns a [chi.Router] serving the HTML page and the JSON document.
func (docs *Docs) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = writer.Write(docs.page)
	})

	router.Get("/api.json", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = writer.Write(docs.specJSON)
	})

	return router
}

func renderDocsPage(document *openapi3.T, specPath string) ([]byte, error) {
	prefix := ""
	if len(document.Servers) > 0 {
		prefix = strings.TrimSuffix(document.Servers[0].URL, "/")
	}

	operations := make([]docsOperation, 0)
	paths := document.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	slices.Sort(keys)

	for _, path := range keys {
		for method, operation := range paths[path].Operations() {
			row := docsOperation{Method: method, Path: prefix + path, Summary: operation.Summary}
			for _, parameter := range operation.Parameters {
				if parameter.Value != nil {
					row.Parameters = append(row.Parameters, parameter.Value.Name)
				}
			}
			operations = append(operations, row)
		}
	}

	var page strings.Builder
	err := docsTemplate.Execute(&page, map[string]any{
		"Title":       document.Info.Title,
		"Version":     document.Info.Version,
		"Description": document.Info.Description,
		"SpecPath":    specPath,
		"Operations":  operations,
	})
	if err != nil {
		return nil, fmt.Errorf("docs: failed to render page: %w", err)
	}
	return []byte(page.String()), nil
}
