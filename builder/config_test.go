// Package builder contains unit tests for builderConfig and BuilderOption
// resolution.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Equal(t, "7", cfg.idFn(7))
	assert.Nil(t, cfg.rng)
	assert.Equal(t, defaultLeftPrefix, cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

func TestIDSchemeOptions_LastWins(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbolIDs(), WithPrefixIDs("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithIDScheme(DefaultIDFn)).idFn(3))
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
}

func TestPartitionPrefix(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("U", ""))
	assert.Equal(t, "U", cfg.leftPrefix)
	assert.Equal(t, defaultRightPrefix, cfg.rightPrefix)
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithIDScheme(nil) })
	assert.Panics(t, func() { WithRand(nil) })
}
