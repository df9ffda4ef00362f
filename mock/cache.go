package mock

import "github.com/pagesift/pagesift"

var _ pagesift.Cache = (*Cache)(nil)

// Cache is a mock implementation of pagesift.Cache.
type Cache struct {
	GetFn   func(url string) (string, bool)
	PutFn   func(url string, result string)
	ClearFn func()
	LenFn   func() int
}

func (c *Cache) Get(url string) (string, bool) {
	return c.GetFn(url)
}

func (c *Cache) Put(url string, result string) {
	c.PutFn(url, result)
}

func (c *Cache) Clear() {
	if c.ClearFn != nil {
		c.ClearFn()
	}
}

func (c *Cache) Len() int {
	if c.LenFn == nil {
		return 0
	}
	return c.LenFn()
}
