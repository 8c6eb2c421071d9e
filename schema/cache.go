package schema

import (
	"encoding/json"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Cache memoizes compiled validators by the canonical JSON encoding of
// their documents. All entries share one set of options.
type Cache struct {
	compiler *Compiler
	lru      *lru.Cache
}

func NewCache(size int, opts *Options) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "lru.New")
	}
	return &Cache{compiler: NewCompiler(opts), lru: c}, nil
}

func (cache *Cache) Compile(data any) (*Validator, error) {
	key, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "json.Marshal")
	}
	if v, ok := cache.lru.Get(string(key)); ok {
		return v.(*Validator), nil
	}
	v, err := cache.compiler.Compile(data)
	if err != nil {
		return nil, err
	}
	if evicted := cache.lru.Add(string(key), v); evicted {
		log.Debugf("schema cache full, evicted the oldest entry")
	}
	return v, nil
}

func (cache *Cache) Len() int {
	return cache.lru.Len()
}
