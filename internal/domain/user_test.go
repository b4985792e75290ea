package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Equal(t *testing.T) {
	a := &User{Name: "Ada", Email: "ada@example.com"}
	b := &User{Name: "Ada Lovelace", Email: "ADA@example.com"}
	c := &User{Name: "Ada", Email: "other@example.com"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
	assert.True(t, (*User)(nil).Equal(nil))
}

func TestAddress_String(t *testing.T) {
	addr := Address{Street: "Carrer Major", Number: 12, ZipCode: "08001", City: "Barcelona"}
	assert.Equal(t, "Carrer Major 12, 08001 Barcelona", addr.String())
}
