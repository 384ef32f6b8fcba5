package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// Renderer converts note Markdown into HTML blocks. GFM extensions (tables,
// strikethrough, autolinks) are enabled; fenced mermaid blocks are routed to
// the diagram renderer and headings carry stable line-derived ids.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer builds the note renderer.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	md.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(&headingRenderer{}, 100),
		util.Prioritized(&codeBlockRenderer{}, 100),
	))
	return &Renderer{md: md}
}

// Render converts source Markdown to HTML. Callers strip front matter first.
func (r *Renderer) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// lineIndex returns the zero-based line index of the byte offset in source.
func lineIndex(source []byte, offset int) int {
	if offset > len(source) {
		offset = len(source)
	}
	return bytes.Count(source[:offset], []byte{'\n'})
}

// headingRenderer emits heading elements with heading-<line> ids so outline
// entries resolve to a unique element instead of matching on text content.
type headingRenderer struct{}

func (r *headingRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
}

func (r *headingRenderer) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		fmt.Fprintf(w, "</h%d>\n", n.Level)
		return ast.WalkContinue, nil
	}

	line := 0
	if n.Lines().Len() > 0 {
		line = lineIndex(source, n.Lines().At(0).Start)
	}
	fmt.Fprintf(w, `<h%d id="heading-%d">`, n.Level, line)
	return ast.WalkContinue, nil
}
