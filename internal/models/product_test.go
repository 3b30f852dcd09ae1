package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}
	assert.False(t, Category("Jardín").Valid())
	assert.False(t, Category("").Valid())
}

func TestDefaultCategoryIsKnown(t *testing.T) {
	assert.True(t, DefaultCategory.Valid())
}
