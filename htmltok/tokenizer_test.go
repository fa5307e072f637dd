package htmltok

import (
	"testing"

	"github.com/kasuga-html/htmltree/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	tok := New(src, Options{})
	var out []token.Token
	for {
		tk := tok.Next()
		out = append(out, tk)
		if tk.Kind == token.EndOfInput {
			return out
		}
	}
}

func TestTokenizeSimpleDoctype(t *testing.T) {
	toks := collect(t, "<!doctype html>")
	if toks[0].Kind != token.Doctype || toks[0].Name != "html" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestTokenizeStartAndEndTag(t *testing.T) {
	toks := collect(t, "<p class=\"a\">hi</p>")
	if toks[0].Kind != token.StartTag || toks[0].Name != "p" {
		t.Fatalf("got %+v", toks[0])
	}
	if len(toks[0].Attrs) != 1 || toks[0].Attrs[0].Name != "class" || toks[0].Attrs[0].Value != "a" {
		t.Fatalf("got attrs %+v", toks[0].Attrs)
	}
	if toks[1].Kind != token.Data || toks[1].Text != "hi" {
		t.Fatalf("got %+v", toks[1])
	}
	if toks[2].Kind != token.EndTag || toks[2].Name != "p" {
		t.Fatalf("got %+v", toks[2])
	}
}

func TestTokenizeDoctypeWithPublicAndSystemIDs(t *testing.T) {
	toks := collect(t, `<!DOCTYPE html PUBLIC 'foo''bar'>`)
	d := toks[0]
	if d.Kind != token.Doctype || d.PublicID == nil || *d.PublicID != "foo" {
		t.Fatalf("got %+v", d)
	}
	if d.SystemID == nil || *d.SystemID != "bar" {
		t.Fatalf("got %+v", d)
	}
}

func TestRawTextModeStopsAtMatchingEndTag(t *testing.T) {
	tok := New("alert('<b>');</script>after", Options{})
	tok.SetState(token.ScriptDataState)
	tok.SetLastStartTag("script")
	data := tok.Next()
	if data.Kind != token.Data || data.Text != "alert('<b>');" {
		t.Fatalf("got %+v", data)
	}
	end := tok.Next()
	if end.Kind != token.EndTag || end.Name != "script" {
		t.Fatalf("got %+v", end)
	}
	tok.SetState(token.DataState)
	rest := tok.Next()
	if rest.Kind != token.Data || rest.Text != "after" {
		t.Fatalf("got %+v", rest)
	}
}
