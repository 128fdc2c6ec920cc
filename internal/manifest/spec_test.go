package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecVersion(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"https://cdn.example/bar@2.3.1", "2.3.1"},
		{"npm:@acme/widgets@1.4.0", "1.4.0"},
		{"@acme/widgets@next", "next"},
		{"react@18.2.0", "18.2.0"},
		{"https://cdn.example/bar.js", "latest"},
		{"@acme/widgets", "latest"},
		{"https://cdn.example/bar@2.3.1/dist/index.js", "latest"},
		{"https://cdn.example/x@1.0.0?a=1&b=<2>", "1.0.0"},
		{"https://cdn.example/x@1.0.0#main", "1.0.0"},
		{"https://esm.sh/@acme/widgets@2.0.1?bundle", "2.0.1"},
		{"", "latest"},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			assert.Equal(t, tt.want, SpecVersion(tt.spec))
		})
	}
}
