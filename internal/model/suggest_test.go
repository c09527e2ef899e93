package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"interface", "interface", 0},
		{"interfce", "interface", 1},
		{"kitten", "sitting", 3},
		{"Dictionary", "dictionary", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, editDistance(tt.a, tt.b))
			assert.Equal(t, tt.want, editDistance(tt.b, tt.a))
		})
	}
}

func TestSuggestUnitKind(t *testing.T) {
	assert.Equal(t, "interface", SuggestUnitKind("interfce"))
	assert.Equal(t, "dictionary", SuggestUnitKind("Dictionary"))
	assert.Equal(t, "global_functions", SuggestUnitKind("global_function"))
	assert.Empty(t, SuggestUnitKind("enum"))
	assert.Empty(t, SuggestUnitKind(""))
}
