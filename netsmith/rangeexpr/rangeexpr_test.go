package rangeexpr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want []int
	}{
		{"range and literal", "2-4,20", []int{2, 3, 4, 20}},
		{"single value range", "1-1", []int{1}},
		{"single literal", "50", []int{50}},
		{"overlapping tokens deduplicate", "2-5,4,3-6", []int{2, 3, 4, 5, 6}},
		{"unsorted input sorts ascending", "20,2-4", []int{2, 3, 4, 20}},
		{"whitespace tolerated", " 2-4 , 20 ", []int{2, 3, 4, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr, 1, 4094)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{"not a number", "abc"},
		{"bad range endpoint", "2-x"},
		{"inverted range", "10-2"},
		{"below minimum", "0"},
		{"above maximum", "4095"},
		{"empty token", "2,,4"},
		{"empty expression", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.expr, 1, 4094)
			var parseErr *ParseError
			assert.Error(t, err)
			assert.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
		})
	}
}

func TestParseErrorNamesToken(t *testing.T) {
	_, err := Parse("2-4,abc,7", 1, 4094)

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	assert.Equal(t, "abc", parseErr.Token)
}
