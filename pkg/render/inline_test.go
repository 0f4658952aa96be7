package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markpadhq/markpad/pkg/render"
)

func TestInlineSpans(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "bold",
			src:  "a **b** c",
			want: "<p>a <strong>b</strong> c</p>\n",
		},
		{
			name: "italic",
			src:  "a *b* c",
			want: "<p>a <em>b</em> c</p>\n",
		},
		{
			name: "bold wins over italic",
			src:  "**b**",
			want: "<p><strong>b</strong></p>\n",
		},
		{
			name: "strikethrough",
			src:  "~~gone~~",
			want: "<p><del>gone</del></p>\n",
		},
		{
			name: "code span escapes html",
			src:  "run `a < b` now",
			want: "<p>run <code>a &lt; b</code> now</p>\n",
		},
		{
			name: "emphasis inside code span stays literal",
			src:  "`not *italic*`",
			want: "<p><code>not *italic*</code></p>\n",
		},
		{
			name: "link",
			src:  "[site](https://example.com)",
			want: "<p><a href=\"https://example.com\">site</a></p>\n",
		},
		{
			name: "link with title",
			src:  "[site](https://example.com \"Home\")",
			want: "<p><a href=\"https://example.com\" title=\"Home\">site</a></p>\n",
		},
		{
			name: "image beats link syntax",
			src:  "![alt](pic.png)",
			want: "<p><img src=\"pic.png\" alt=\"alt\"></p>\n",
		},
		{
			name: "image with title",
			src:  "![alt](pic.png \"T\")",
			want: "<p><img src=\"pic.png\" alt=\"alt\" title=\"T\"></p>\n",
		},
		{
			name: "bare url autolinks",
			src:  "see https://example.org/x today",
			want: "<p>see <a href=\"https://example.org/x\">https://example.org/x</a> today</p>\n",
		},
		{
			name: "link target is not autolinked twice",
			src:  "[x](https://example.org)",
			want: "<p><a href=\"https://example.org\">x</a></p>\n",
		},
		{
			name: "email autolinks",
			src:  "mail me@example.com please",
			want: "<p>mail <a href=\"mailto:me@example.com\">me@example.com</a> please</p>\n",
		},
		{
			name: "unterminated emphasis stays literal",
			src:  "a **b",
			want: "<p>a **b</p>\n",
		},
		{
			name: "unterminated link stays literal",
			src:  "[text](no-close",
			want: "<p>[text](no-close</p>\n",
		},
		{
			name: "inline spans in heading",
			src:  "# a **b**",
			want: "<h1>a <strong>b</strong></h1>\n",
		},
		{
			name: "inline spans in list item",
			src:  "- has *em*",
			want: "<ul>\n<li>has <em>em</em></li>\n</ul>\n",
		},
		{
			name: "inline spans in table cell",
			src:  "| **h** |\n| - |\n| `c` |",
			want: "<table>\n<thead>\n<tr><th align=\"left\"><strong>h</strong></th></tr>\n" +
				"</thead>\n<tbody>\n<tr><td align=\"left\"><code>c</code></td></tr>\n</tbody>\n</table>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, renderPlain(tt.src))
		})
	}
}

func TestInlineCodeInsideLinkText(t *testing.T) {
	t.Parallel()

	got := renderPlain("[`code`](https://example.com)")
	assert.Contains(t, got, "<a href=\"https://example.com\"><code>code</code></a>")
}

func FuzzRender(f *testing.F) {
	seeds := []string{
		"# h\n\npara **b** *i*\n",
		"> q\n> > qq\n",
		"- a\n    - b\n1. c\n",
		"| a | b |\n| :-: | --: |\n| 1 | 2 |\n",
		"```go\ncode\n```\n",
		`\*esc\* [l](u) ![i](u) https://x.dev a@b.io`,
	}
	for _, s := range seeds {
		f.Add(s)
	}

	r := render.New(render.Options{})
	f.Fuzz(func(t *testing.T, src string) {
		// The renderer is total: any input renders without panicking.
		_ = r.Render(src)
	})
}
