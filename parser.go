package mediawiki

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"gitlab.com/wpetit/goweb/logger"
)

// Parser parses raw page titles and memoizes the results.
type Parser struct {
	cache *lru.Cache[string, *Title]
}

func (p *Parser) Parse(site *Site, raw string) (*Title, error) {
	key := getTitleCacheKey(site, raw)

	if title, found := p.cache.Get(key); found {
		logger.Debug(context.Background(), "found parsed title in cache", logger.F("title", title.FullText()))
		return title, nil
	}

	title, err := ParseTitle(site, raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	p.cache.Add(key, title)

	return title, nil
}

func getTitleCacheKey(site *Site, raw string) string {
	if site == nil {
		return "title:" + raw
	}

	return fmt.Sprintf("title:%s/%s", site.Domain(), raw)
}

func NewParser(funcs ...OptionFunc) (*Parser, error) {
	opts := NewOptions(funcs...)

	cache, err := lru.New[string, *Title](opts.CacheSize)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Parser{
		cache: cache,
	}, nil
}
