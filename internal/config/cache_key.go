package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// FacetsKey returns the cache key for the catalog facet lists.
func (r *CacheKeyStruct) FacetsKey() string {
	return "catalog:facets"
}

// BrowseResponseKey returns the cache key for a cached browse response,
// keyed by the full request path including the query string.
func (r *CacheKeyStruct) BrowseResponseKey(requestURI string) string {
	return fmt.Sprintf("browse:%s", requestURI)
}

var CacheKey = NewCacheKeyStruct()
