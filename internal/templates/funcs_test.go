package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebab(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"admin", "admin"},
		{"UserAdmin", "user-admin"},
		{"userAdmin2FA", "user-admin2-fa"},
		{"user admin", "user-admin"},
		{"user__admin  panel", "user-admin-panel"},
		{"already-kebab", "already-kebab"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Kebab(tt.in))
		})
	}
}

func TestPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"admin", "Admin"},
		{"user-admin", "UserAdmin"},
		{"user_admin panel", "UserAdminPanel"},
		{"-lead", "Lead"},
		{"übersicht", "Übersicht"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Pascal(tt.in))
		})
	}
}

func TestJSONString(t *testing.T) {
	got, err := jsonString(`a "b" <c>`)
	assert.NoError(t, err)
	assert.Equal(t, `"a \"b\" <c>"`, got)
}
