package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	got := maps.Collect(Concat2(maps.All(a), nil, maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	// Stops as soon as the consumer does.
	var seen []string
	for _, v := range Concat2(slices.All([]string{"x", "y"}), slices.All([]string{"z"})) {
		seen = append(seen, v)
		if v == "y" {
			break
		}
	}
	assert.Equal([]string{"x", "y"}, seen)
}
