package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompat_Name(t *testing.T) {
	assert.Equal(t, DefaultProvider, (&Compat{}).Name())
	assert.Equal(t, "deepseek", (&Compat{Provider: "deepseek"}).Name())
}
