package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine(t *testing.T) {
	eng, err := newEngine()
	require.NoError(t, err)
	require.NotNil(t, eng)

	assert.NotNil(t, eng.registry)
	assert.NotNil(t, eng.classifier)
	assert.NotNil(t, eng.layouts)
	assert.Greater(t, eng.classifier.RuleCount(), 0)
}

func TestResolveStore(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	name, chain := resolveStore("Walmart Supercenter", "walmart")
	assert.Equal(t, "Walmart Supercenter", name)
	assert.Equal(t, "walmart", chain)

	viper.Set("store.name", "Hy-Vee #1025")
	viper.Set("store.chain", "hyvee")

	name, chain = resolveStore("", "")
	assert.Equal(t, "Hy-Vee #1025", name)
	assert.Equal(t, "hyvee", chain)

	// Flags beat config.
	name, chain = resolveStore("Target", "")
	assert.Equal(t, "Target", name)
	assert.Equal(t, "hyvee", chain)
}
