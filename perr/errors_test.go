package perr

import (
	"testing"

	"github.com/kasuga-html/htmltree/token"
)

func TestCollectorAccumulatesInOrder(t *testing.T) {
	var c Collector
	c.Report(token.Location{Line: 1, Col: 0}, MissingDoctype)
	c.Report(token.Location{Line: 2, Col: 4}, UnexpectedEndTag)

	if len(c.Errors) != 2 {
		t.Fatalf("got %d errors, want 2", len(c.Errors))
	}
	if c.Errors[0].Code != MissingDoctype || c.Errors[1].Code != UnexpectedEndTag {
		t.Fatalf("unexpected codes: %+v", c.Errors)
	}
}

func TestMessageFallback(t *testing.T) {
	if Message(Code("not-a-real-code")) == "" {
		t.Fatal("Message should never return empty")
	}
	if Message(MissingDoctype) == "" {
		t.Fatal("known code should have a message")
	}
}
