// Package generator builds the starting grid for a game.
package generator

import (
	"fmt"
	"sort"

	"glueboy/pkg/engine/world"
)

// GridSeeder is an interface for starting layouts
type GridSeeder interface {
	Seed(size int) *world.Grid
	Name() string
}

// Available seeders
var (
	Demo   = &DemoSeeder{}
	Blank  = &EmptySeeder{}
	Border = &BorderSeeder{}
)

// DefaultSeeder is the default starting layout
var DefaultSeeder GridSeeder = Demo

var seeders = map[string]GridSeeder{
	"demo":   Demo,
	"empty":  Blank,
	"border": Border,
}

// Lookup returns the seeder registered under key
func Lookup(key string) (GridSeeder, error) {
	s, ok := seeders[key]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (have %v)", key, Keys())
	}
	return s, nil
}

// Keys lists the registered layout keys, sorted
func Keys() []string {
	keys := make([]string, 0, len(seeders))
	for k := range seeders {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
