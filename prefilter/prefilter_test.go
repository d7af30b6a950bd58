package prefilter_test

import (
	"reflect"
	"testing"

	"github.com/torao/terp/prefilter"
)

func TestLiteralSet_Candidates(t *testing.T) {
	tests := []struct {
		name     string
		literals []string
		text     string
		want     []string
	}{
		{"empty set", nil, "if x then y", nil},
		{"no hits", []string{"else", "while"}, "if x then y", nil},
		{"single hit", []string{"then", "else"}, "if x then y", []string{"then"}},
		{"multiple hits in order", []string{"then", "else"}, "if a then b else c", []string{"then", "else"}},
		{"dedup repeated literal", []string{"if", "if"}, "if x if y", []string{"if"}},
		{"empty text", []string{"then"}, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := prefilter.Build(tt.literals)
			got := ls.Candidates(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Candidates(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLiteralSet_ZeroValue(t *testing.T) {
	var ls *prefilter.LiteralSet
	if got := ls.Candidates("anything"); got != nil {
		t.Errorf("nil LiteralSet.Candidates = %v, want nil", got)
	}
}
