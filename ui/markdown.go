package ui

import (
	"embed"
	"html/template"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// renderAboutPanel converts the embedded about.md into HTML for the
// dashboard's description panel.
func renderAboutPanel(files embed.FS) (template.HTML, error) {
	source, err := files.ReadFile("templates/about.md")
	if err != nil {
		return "", err
	}

	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})
	return template.HTML(markdown.ToHTML(source, p, renderer)), nil
}
