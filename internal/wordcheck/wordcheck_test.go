package wordcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{name: "three arabic letters", word: "كتب", want: true},
		{name: "letters with hamza", word: "أكل", want: true},
		{name: "three arabic-indic digits", word: "١٢٣", want: true},
		{name: "letters and digit mixed", word: "كت٣", want: true},
		{name: "empty", word: "", want: false},
		{name: "too short", word: "كت", want: false},
		{name: "too long", word: "كتاب", want: false},
		{name: "latin letters", word: "abc", want: false},
		{name: "latin mixed in", word: "كتb", want: false},
		{name: "ascii digits", word: "123", want: false},
		{name: "contains space", word: "كت ", want: false},
		{name: "arabic punctuation", word: "كت؟", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidFormat(tt.word))
		})
	}
}
