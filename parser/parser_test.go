package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/heathj/domtree/parser/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, configure ...func(*Config)) *Parser {
	t.Helper()
	cfg := DefaultConfig()
	cfg.LogLevel = "panic"
	for _, c := range configure {
		c(cfg)
	}
	p, err := NewParser(cfg)
	require.NoError(t, err)
	return p
}

func parse(t *testing.T, p *Parser, in string) *dom.Document {
	t.Helper()
	doc, err := p.ParseString(in)
	require.NoError(t, err)
	return doc
}

func TestParseTree(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{
			"<p>Hi<b>there</b></p>",
			`#document
| <html>
|   <head>
|   <body>
|     <p>
|       "Hi"
|       <b>
|         "there"`,
		},
		{
			"<!DOCTYPE html><!--c--><title>t</title>",
			`#document
| <!DOCTYPE html>
| <!-- c -->
| <html>
|   <head>
|     <title>
|       "t"
|   <body>`,
		},
		{
			`<a href="/x" id=y>go</a>`,
			`#document
| <html>
|   <head>
|   <body>
|     <a>
|       href="/x"
|       id="y"
|       "go"`,
		},
	}
	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, parse(t, p, tt.in).String())
		})
	}
}

func TestParseCreatesTypedElements(t *testing.T) {
	doc := parse(t, newTestParser(t), `<!DOCTYPE html>
<input list=colors>
<datalist id=colors><option value=red>Red<option value=blue>Blue</datalist>
<select><option>a<optgroup><option selected>b</optgroup></select>`)

	require.NotNil(t, doc.Doctype())
	assert.Equal(t, "html", string(doc.Doctype().Name))

	elem := doc.GetElementByID("colors")
	require.NotNil(t, elem)
	datalist, ok := dom.AsHTMLDataListElement(elem.Node)
	require.True(t, ok)
	options := datalist.Options()
	require.Equal(t, 2, options.Length())
	red, ok := dom.AsHTMLOptionElement(options.Item(0).Node)
	require.True(t, ok)
	assert.Equal(t, "red", string(red.Value()))
	assert.Equal(t, "Red", string(red.Text()))

	// the collection stays live after parsing
	green, err := doc.CreateElement("option")
	require.NoError(t, err)
	_, err = elem.AppendChild(green.Node)
	require.NoError(t, err)
	assert.Equal(t, 3, options.Length())

	selects := doc.GetElementsByKind(dom.HTMLSelectKind)
	require.Equal(t, 1, selects.Length())
	sel, ok := dom.AsHTMLSelectElement(selects.Item(0).Node)
	require.True(t, ok)
	assert.Equal(t, 2, sel.Length())
	assert.Equal(t, 1, sel.SelectedIndex())
	assert.Equal(t, "b", string(sel.Value()))
}

func TestParseFrameset(t *testing.T) {
	doc := parse(t, newTestParser(t), `<frameset cols="25%,75%"><frame src=a><frame src=b></frameset>`)
	sets := doc.GetElementsByKind(dom.HTMLFrameSetKind)
	require.Equal(t, 1, sets.Length())
	frameset, ok := dom.AsHTMLFrameSetElement(sets.Item(0).Node)
	require.True(t, ok)
	assert.Equal(t, "25%,75%", string(frameset.Cols()))
	assert.Equal(t, 2, frameset.Frames().Length())
	assert.Empty(t, doc.GetElementsByTagName("body").Elements())
}

func TestParseForeignContent(t *testing.T) {
	doc := parse(t, newTestParser(t), `<svg viewBox="0 0 1 1"><a xlink:href="#x"></a></svg><math><mi>x</mi></math>`)

	svg := doc.GetElementsByTagName("svg").Item(0)
	require.NotNil(t, svg)
	assert.Equal(t, dom.Svgns, svg.NamespaceURI)
	assert.True(t, dom.IsKind(svg.Node, dom.ElementTypeIDOf(dom.ElementSVG)))
	assert.NotNil(t, svg.Attributes.GetNamedItemNS(dom.Nullns, "viewBox"), "attribute case is kept")

	a := svg.Children().Item(0)
	require.NotNil(t, a)
	href := a.Attributes.GetNamedItemNS(dom.Xlinkns, "href")
	require.NotNil(t, href)
	assert.Equal(t, "#x", string(href.Value))
	assert.Equal(t, "xlink:href", string(href.Name))
	_, ok := dom.AsHTMLElement(a.Node)
	assert.False(t, ok, "an svg <a> is not an HTML anchor")

	mi := doc.GetElementsByTagName("mi").Item(0)
	require.NotNil(t, mi)
	assert.True(t, dom.IsKind(mi.Node, dom.ElementTypeIDOf(dom.ElementMathML)))
}

func TestParseScripting(t *testing.T) {
	in := "<body><noscript><p>x</p></noscript>"

	off := parse(t, newTestParser(t), in)
	assert.Equal(t, 1, off.GetElementsByTagName("p").Length())

	on := parse(t, newTestParser(t, func(c *Config) { c.ScriptingEnabled = true }), in)
	assert.Equal(t, 0, on.GetElementsByTagName("p").Length())
	noscript := on.GetElementsByTagName("noscript").Item(0)
	require.NotNil(t, noscript)
	assert.Equal(t, "<p>x</p>", string(noscript.TextContent()))
}

func TestParseSanitize(t *testing.T) {
	in := `<p onclick="steal()">hi</p><script>alert(1)</script>`

	raw := parse(t, newTestParser(t), in)
	assert.Equal(t, 1, raw.GetElementsByTagName("script").Length())

	clean := parse(t, newTestParser(t, func(c *Config) { c.Sanitize = true }), in)
	assert.Equal(t, 0, clean.GetElementsByTagName("script").Length())
	p := clean.GetElementsByTagName("p").Item(0)
	require.NotNil(t, p)
	assert.False(t, p.HasAttribute("onclick"))
	assert.Equal(t, "hi", string(p.TextContent()))
}

func TestParseFragment(t *testing.T) {
	p := newTestParser(t)
	doc := p.NewDocument()
	datalist, err := dom.NewHTMLDataListElement("datalist", "", doc)
	require.NoError(t, err)

	frag, err := p.ParseFragment(strings.NewReader("<option>a</option><option>b</option>"), doc, "")
	require.NoError(t, err)
	assert.Equal(t, 2, frag.ChildNodes.Length())

	_, err = datalist.AppendChild(frag.Node)
	require.NoError(t, err)
	assert.Equal(t, 2, datalist.Options().Length())

	row, err := p.ParseFragment(strings.NewReader("<td>x</td>"), doc, "TR")
	require.NoError(t, err)
	require.Equal(t, 1, row.ChildNodes.Length())
	assert.True(t, dom.IsHTMLElementKind(row.ChildNodes.Item(0), dom.HTMLTableCellKind))
}

func TestParseIntoFinalizedDocument(t *testing.T) {
	p := newTestParser(t)
	doc := p.NewDocument()
	doc.Finalize()
	_, err := p.ParseFragment(strings.NewReader("<p>x</p>"), doc, "body")
	assert.Equal(t, dom.ErrDocumentFinalized, err)
}

func TestSerializeHTML(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{`<p class="a">x &amp; y<br></p>`, `<p class="a">x &amp; y<br></p>`},
		{`<p title='say "hi"'>&lt;b&gt;</p>`, `<p title="say &quot;hi&quot;">&lt;b&gt;</p>`},
		{`<body><script>if (a < b) {}</script>`, `<script>if (a < b) {}</script>`},
		{`<body><!--note--><img src=x>`, `<!--note--><img src="x">`},
		{`<svg viewBox="0 0 1 1"><a xlink:href="#x"></a></svg>`, `<svg viewBox="0 0 1 1"><a xlink:href="#x"></a></svg>`},
	}
	p := newTestParser(t)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			doc := parse(t, p, tt.in)
			body := doc.GetElementsByTagName("body").Item(0)
			require.NotNil(t, body)
			assert.Equal(t, tt.expected, SerializeHTMLFragment(body.Node, false))
		})
	}

	doc := parse(t, p, "<!DOCTYPE html><title>t</title>")
	assert.Equal(t, "<!DOCTYPE html><html><head><title>t</title></head><body></body></html>", SerializeHTML(doc.Node, false))
	title := doc.GetElementsByTagName("title").Item(0)
	assert.Equal(t, "<title>t</title>", SerializeHTML(title.Node, false))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		return path
	}

	cfg, err := LoadConfig(write("ok.yaml", "log_level: debug\nscripting_enabled: true\nurl: https://example.com/\n"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.ScriptingEnabled)
	assert.False(t, cfg.Sanitize)
	assert.Equal(t, "body", cfg.FragmentContext, "missing keys keep their defaults")

	p, err := NewParser(cfg)
	require.NoError(t, err)
	doc, err := p.ParseString("<p>x</p>")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/", string(doc.URL))

	_, err = LoadConfig(write("level.yaml", "log_level: loud\n"))
	assert.Error(t, err)
	_, err = LoadConfig(write("bad.yaml", "log_level: [\n"))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = NewParser(&Config{LogLevel: "loud"})
	assert.Error(t, err)
}
