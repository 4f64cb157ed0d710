package mediawiki

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Title struct {
	site      *Site
	namespace Namespace
	text      string
}

func (t *Title) Site() *Site {
	return t.site
}

func (t *Title) Namespace() Namespace {
	return t.namespace
}

// Text returns the title without its namespace prefix, in display form.
func (t *Title) Text() string {
	return t.text
}

// FullText returns the display form of the title, namespace prefix included.
func (t *Title) FullText() string {
	return toFullText(t.namespace, t.text)
}

// DBKey returns the canonical database form of the title, with spaces
// replaced by underscores.
func (t *Title) DBKey() string {
	return strings.ReplaceAll(t.FullText(), " ", "_")
}

func toFullText(ns Namespace, text string) string {
	if ns.IsMain() {
		return text
	}

	return fmt.Sprintf("%s:%s", ns.Label(), text)
}

// ParseTitle parses a raw page title for the given site. Underscores are
// treated as spaces and surrounding whitespace is ignored. A recognized
// namespace prefix moves the title out of the main namespace; an
// unrecognized prefix stays part of the main-namespace title. A leading
// colon forces the main namespace.
func ParseTitle(site *Site, raw string) (*Title, error) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))
	if text == "" {
		return nil, errors.WithStack(ErrEmptyTitle)
	}

	title := &Title{
		site:      site,
		namespace: NamespaceMain,
	}

	forcedMain := strings.HasPrefix(text, ":")
	if forcedMain {
		text = strings.TrimSpace(strings.TrimPrefix(text, ":"))
		if text == "" {
			return nil, errors.WithStack(ErrEmptyTitle)
		}
	}

	if !forcedMain {
		if prefix, rest, found := strings.Cut(text, ":"); found {
			ns, matched := namespaceWithLegacyName(strings.TrimSpace(prefix))
			if matched {
				rest = strings.TrimSpace(rest)
				if rest == "" {
					return nil, errors.Wrapf(ErrInvalidTitle, "title '%s' has no text after its namespace prefix", raw)
				}

				title.namespace = ns
				text = rest
			}
		}
	}

	title.text = text

	return title, nil
}
