package markdown

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// DiagramLanguage is the fenced-code language tag that triggers diagram
// rendering instead of code display.
const DiagramLanguage = "mermaid"

// codeBlockRenderer renders fenced code blocks. A mermaid block becomes a
// uniquely identified diagram container hydrated to SVG on the client; any
// other language becomes a labeled monospace code block.
type codeBlockRenderer struct{}

func (r *codeBlockRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderFencedCodeBlock)
}

func (r *codeBlockRenderer) renderFencedCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.FencedCodeBlock)

	language := string(n.Language(source))

	var text strings.Builder
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		text.Write(line.Value(source))
	}

	if language == DiagramLanguage {
		r.renderDiagram(w, text.String())
		return ast.WalkSkipChildren, nil
	}

	_, _ = w.WriteString(`<div class="code-block">`)
	if language != "" {
		fmt.Fprintf(w, `<div class="code-block-lang">%s</div>`, string(util.EscapeHTML([]byte(language))))
	}
	if language != "" {
		fmt.Fprintf(w, `<pre><code class="language-%s">`, string(util.EscapeHTML([]byte(language))))
	} else {
		_, _ = w.WriteString(`<pre><code>`)
	}
	_, _ = w.Write(util.EscapeHTML([]byte(text.String())))
	_, _ = w.WriteString("</code></pre></div>\n")

	return ast.WalkSkipChildren, nil
}

// renderDiagram emits the diagram container. The raw description is carried
// as escaped text content for client-side hydration; a blank diagram is a
// render failure and degrades to a visible placeholder so a broken diagram
// never takes the surrounding document down with it.
func (r *codeBlockRenderer) renderDiagram(w util.BufWriter, chart string) {
	if strings.TrimSpace(chart) == "" {
		_, _ = w.WriteString(`<div class="mermaid-error"><p>Diagram rendering failed</p><p>Check the mermaid syntax</p></div>` + "\n")
		return
	}

	id := uuid.NewString()
	fmt.Fprintf(w, `<div class="mermaid" id="mermaid-%s">`, id)
	_, _ = w.Write(util.EscapeHTML([]byte(chart)))
	_, _ = w.WriteString("</div>\n")
}
