package mediawiki

import (
	"encoding/json"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Namespace is one of the integer-coded partitions of wiki page titles
// (articles, talk pages, templates, files, ...). Values are comparable,
// so downstream code can test e.g. ns == NamespaceFile.
type Namespace struct {
	code  int
	name  string
	label string
}

// See https://www.mediawiki.org/wiki/Manual:Namespace
var (
	NamespaceMedia         = Namespace{code: -2, name: "MEDIA"}
	NamespaceSpecial       = Namespace{code: -1, name: "SPECIAL"}
	NamespaceMain          = Namespace{code: 0, name: "MAIN"}
	NamespaceTalk          = Namespace{code: 1, name: "TALK"}
	NamespaceUser          = Namespace{code: 2, name: "USER"}
	NamespaceUserTalk      = Namespace{code: 3, name: "USER_TALK"}
	NamespaceProject       = Namespace{code: 4, name: "PROJECT", label: "Project"}
	NamespaceProjectTalk   = Namespace{code: 5, name: "PROJECT_TALK", label: "Project talk"}
	NamespaceFile          = Namespace{code: 6, name: "FILE", label: "File"}
	NamespaceFileTalk      = Namespace{code: 7, name: "FILE_TALK", label: "File talk"}
	NamespaceMediaWiki     = Namespace{code: 8, name: "MEDIAWIKI"}
	NamespaceMediaWikiTalk = Namespace{code: 9, name: "MEDIAWIKI_TALK"}
	NamespaceTemplate      = Namespace{code: 10, name: "TEMPLATE"}
	NamespaceTemplateTalk  = Namespace{code: 11, name: "TEMPLATE_TALK"}
	NamespaceHelp          = Namespace{code: 12, name: "HELP"}
	NamespaceHelpTalk      = Namespace{code: 13, name: "HELP_TALK"}
	NamespaceCategory      = Namespace{code: 14, name: "CATEGORY"}
	NamespaceCategoryTalk  = Namespace{code: 15, name: "CATEGORY_TALK"}
	NamespacePortal        = Namespace{code: 100, name: "PORTAL"}
	NamespacePortalTalk    = Namespace{code: 101, name: "PORTAL_TALK"}
	NamespaceBook          = Namespace{code: 108, name: "BOOK"}
	NamespaceBookTalk      = Namespace{code: 109, name: "BOOK_TALK"}
	NamespaceDraft         = Namespace{code: 118, name: "DRAFT"}
	NamespaceDraftTalk     = Namespace{code: 119, name: "DRAFT_TALK"}
	NamespaceTimedText     = Namespace{code: 710, name: "TIMEDTEXT"}
	NamespaceTimedTextTalk = Namespace{code: 711, name: "TIMEDTEXT_TALK"}
	NamespaceModule        = Namespace{code: 828, name: "MODULE"}
	NamespaceModuleTalk    = Namespace{code: 829, name: "MODULE_TALK"}
	NamespaceTopic         = Namespace{code: 2600, name: "TOPIC"}

	// NamespaceUnknown is returned by NamespaceWithCode when no namespace
	// matches. Its code is a sentinel, not a real namespace id.
	NamespaceUnknown = Namespace{code: math.MinInt32, name: "UNKNOWN"}
)

var namespaces = []Namespace{
	NamespaceMedia,
	NamespaceSpecial,
	NamespaceMain,
	NamespaceTalk,
	NamespaceUser,
	NamespaceUserTalk,
	NamespaceProject,
	NamespaceProjectTalk,
	NamespaceFile,
	NamespaceFileTalk,
	NamespaceMediaWiki,
	NamespaceMediaWikiTalk,
	NamespaceTemplate,
	NamespaceTemplateTalk,
	NamespaceHelp,
	NamespaceHelpTalk,
	NamespaceCategory,
	NamespaceCategoryTalk,
	NamespacePortal,
	NamespacePortalTalk,
	NamespaceBook,
	NamespaceBookTalk,
	NamespaceDraft,
	NamespaceDraftTalk,
	NamespaceTimedText,
	NamespaceTimedTextTalk,
	NamespaceModule,
	NamespaceModuleTalk,
	NamespaceTopic,
	NamespaceUnknown,
}

// Namespaces returns a copy of the namespace table, NamespaceUnknown included.
func Namespaces() []Namespace {
	all := make([]Namespace, len(namespaces))
	copy(all, namespaces)

	return all
}

func (n Namespace) Code() int {
	return n.code
}

// Label returns the human readable name of the namespace. Namespaces
// without an explicit label derive one from their canonical name.
func (n Namespace) Label() string {
	if n.label != "" {
		return n.label
	}

	return strings.ReplaceAll(capitalize(strings.ToLower(n.name)), "_", " ")
}

func (n Namespace) IsMain() bool {
	return n.code == NamespaceMain.code
}

func (n Namespace) IsSpecial() bool {
	return n.code == NamespaceSpecial.code
}

func (n Namespace) IsMedia() bool {
	return n.code == NamespaceMedia.code
}

func (n Namespace) IsFile() bool {
	return n.code == NamespaceFile.code
}

func (n Namespace) IsUser() bool {
	return n.code == NamespaceUser.code
}

func (n Namespace) IsUserTalk() bool {
	return n.code == NamespaceUserTalk.code
}

// IsTalk reports whether the namespace is a talk namespace, following the
// convention that talk namespaces carry the odd code of each subject pair.
func (n Namespace) IsTalk() bool {
	return n.code > 0 && n.code%2 == 1
}

func (n Namespace) IsUnknown() bool {
	return n.code == NamespaceUnknown.code
}

// Talk returns the talk namespace paired with this subject namespace.
// Virtual namespaces (negative codes) and NamespaceUnknown have no talk
// counterpart and are returned unchanged. A pair code absent from the
// table resolves to NamespaceUnknown.
func (n Namespace) Talk() Namespace {
	if n.code < 0 || n.IsTalk() {
		return n
	}

	return NamespaceWithCode(n.code | 1)
}

// Subject returns the subject namespace paired with this talk namespace.
func (n Namespace) Subject() Namespace {
	if n.code < 0 || !n.IsTalk() {
		return n
	}

	return NamespaceWithCode(n.code &^ 1)
}

// MarshalJSON implements json.Marshaler. A namespace is serialized as its
// numeric code.
func (n Namespace) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(n.code)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. Unknown codes deserialize to
// NamespaceUnknown.
func (n *Namespace) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return errors.WithStack(err)
	}

	*n = NamespaceWithCode(code)

	return nil
}

// NamespaceWithCode returns the namespace identified by the given numeric
// code, or NamespaceUnknown when no namespace carries it.
func NamespaceWithCode(code int) Namespace {
	for _, ns := range namespaces {
		if ns.code == code {
			return ns
		}
	}

	return NamespaceUnknown
}

// NamespaceWithLegacyName resolves a namespace from its historical textual
// name, matching case-insensitively against both the canonical name and the
// display label. An empty name, or one matching no namespace, resolves to
// NamespaceMain.
//
// The site parameter is currently not consulted: every site shares the
// canonical table. It is part of the signature so that callers keep working
// once per-site namespace tables are supported.
func NamespaceWithLegacyName(site *Site, name string) Namespace {
	ns, found := namespaceWithLegacyName(name)
	if !found {
		return NamespaceMain
	}

	return ns
}

func namespaceWithLegacyName(name string) (Namespace, bool) {
	if name == "" {
		return Namespace{}, false
	}

	normalized := normalizeLegacyName(name)

	for _, ns := range namespaces {
		if ns.name == normalized {
			return ns, true
		}

		if ns.label != "" && normalizeLegacyName(ns.label) == normalized {
			return ns, true
		}
	}

	return Namespace{}, false
}

func normalizeLegacyName(name string) string {
	return strings.ReplaceAll(strings.ToUpper(name), " ", "_")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
