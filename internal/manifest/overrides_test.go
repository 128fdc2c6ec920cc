package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverridesSet(t *testing.T) {
	var o Overrides
	o = o.Set("a", "1")
	o = o.Set("b", "2")
	o = o.Set("a", "3")

	assert.Equal(t, Overrides{{Name: "a", Value: "3"}, {Name: "b", Value: "2"}}, o)
}

func TestParseOverride(t *testing.T) {
	tests := []struct {
		in     string
		want   Override
		wantOK bool
	}{
		{"foo=/src/foo.ts", Override{Name: "foo", Value: "/src/foo.ts"}, true},
		{"cdn=https://x.example/a.js?v=2", Override{Name: "cdn", Value: "https://x.example/a.js?v=2"}, true},
		{"foo", Override{}, false},
		{"=value", Override{}, false},
		{"foo=", Override{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOverride(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
