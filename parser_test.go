package mediawiki

import (
	"testing"

	"github.com/pkg/errors"
	"gitlab.com/wpetit/goweb/logger"
)

func TestParser(t *testing.T) {
	if testing.Verbose() {
		logger.SetLevel(logger.LevelDebug)
		logger.SetFormat(logger.FormatHuman)
	}

	parser, err := NewParser(WithCacheSize(16))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	site := NewSite("en.wikipedia.org", "en")

	first, err := parser.Parse(site, "Help:Contents")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := NamespaceHelp, first.Namespace(); e != g {
		t.Errorf("first.Namespace(): expected '%s', got '%s'", e.Label(), g.Label())
	}

	second, err := parser.Parse(site, "Help:Contents")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first != second {
		t.Errorf("parser.Parse(): expected the cached title to be returned")
	}

	// titles are cached per site
	other, err := parser.Parse(NewSite("de.wikipedia.org", "de"), "Help:Contents")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if first == other {
		t.Errorf("parser.Parse(): expected sites not to share cache entries")
	}

	// parse failures are not cached
	if _, err := parser.Parse(site, ""); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("parser.Parse(site, \"\"): expected error '%v', got '%v'", ErrEmptyTitle, err)
	}
}

func TestParserNilSite(t *testing.T) {
	parser, err := NewParser()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	title, err := parser.Parse(nil, "Template:Infobox")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := NamespaceTemplate, title.Namespace(); e != g {
		t.Errorf("title.Namespace(): expected '%s', got '%s'", e.Label(), g.Label())
	}

	if title.Site() != nil {
		t.Errorf("title.Site(): expected nil")
	}
}
