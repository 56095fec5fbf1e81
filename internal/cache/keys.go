package cache

import (
	"fmt"
	"strconv"
)

// Keys builds the cache keys of one entity namespace. The layout mirrors the
// API's read paths: one key per entity, one per full listing, one per
// secondary-index listing.
type Keys struct {
	prefix string
}

func NewKeys(prefix string) Keys {
	return Keys{prefix: prefix}
}

// All is the full-collection key, e.g. "teams:all".
func (k Keys) All() string {
	return k.prefix + ":all"
}

// ByID is the singular entity key, e.g. "teams:5".
func (k Keys) ByID(id int) string {
	return k.prefix + ":" + strconv.Itoa(id)
}

// ByField is a secondary-index key, e.g. "timeentries:user:7".
func (k Keys) ByField(field string, value any) string {
	return fmt.Sprintf("%s:%s:%v", k.prefix, field, value)
}
