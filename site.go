package mediawiki

// Site identifies the wiki a title or namespace lookup relates to.
//
// Namespace resolution does not consult it yet: every site shares the
// canonical table. Passing it along keeps call sites stable for when
// per-site namespace tables are supported.
type Site struct {
	domain       string
	languageCode string
}

func NewSite(domain string, languageCode string) *Site {
	return &Site{
		domain:       domain,
		languageCode: languageCode,
	}
}

func (s *Site) Domain() string {
	return s.domain
}

func (s *Site) LanguageCode() string {
	return s.languageCode
}
