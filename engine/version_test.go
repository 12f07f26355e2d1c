package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionPacksComponentsInOrder(t *testing.T) {
	assert.Equal(t, (VersionMajor<<16)|(VersionMinor<<8)|VersionPatch, Version())
}

func TestVersionStringContainsComponents(t *testing.T) {
	s := VersionString()
	assert.Contains(t, s, "mcpricing")
	assert.Contains(t, s, fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch))
}

func TestIsCompatibleOnlyAcrossEqualMajor(t *testing.T) {
	assert.True(t, IsCompatible(VersionMajor))
	assert.False(t, IsCompatible(VersionMajor+1))
}
