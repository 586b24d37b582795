package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayered_Inwards(t *testing.T) {
	t.Parallel()

	t.Run("ProfileComesFirst", func(t *testing.T) {
		t.Parallel()
		l := Layered[string]{General: "general", Profile: "profile", HasProfile: true}
		assert.Equal(t, []string{"profile", "general"}, l.Inwards())
	})

	t.Run("GeneralOnlyWithoutProfile", func(t *testing.T) {
		t.Parallel()
		l := Layered[string]{General: "general"}
		assert.Equal(t, []string{"general"}, l.Inwards())
	})
}

func TestMapLayered(t *testing.T) {
	t.Parallel()

	t.Run("ProjectsBothLayers", func(t *testing.T) {
		t.Parallel()
		l := Layered[int]{General: 1, Profile: 2, HasProfile: true}
		got := MapLayered(l, func(n int) int { return n * 10 })
		assert.Equal(t, []int{20, 10}, got.Inwards())
	})

	t.Run("PreservesProfileAbsence", func(t *testing.T) {
		t.Parallel()
		l := Layered[int]{General: 1}
		got := MapLayered(l, func(n int) int { return n * 10 })
		assert.False(t, got.HasProfile)
		assert.Equal(t, []int{10}, got.Inwards())
	})
}

func TestFirstInward(t *testing.T) {
	t.Parallel()

	supply := func(v string) func(string) (string, bool) {
		return func(layer string) (string, bool) {
			if layer == v {
				return layer, true
			}
			return "", false
		}
	}

	t.Run("ProfileWins", func(t *testing.T) {
		t.Parallel()
		l := Layered[string]{General: "general", Profile: "profile", HasProfile: true}
		got, ok := FirstInward(l, func(layer string) (string, bool) { return layer, true })
		assert.True(t, ok)
		assert.Equal(t, "profile", got)
	})

	t.Run("FallsBackToGeneral", func(t *testing.T) {
		t.Parallel()
		l := Layered[string]{General: "general", Profile: "profile", HasProfile: true}
		got, ok := FirstInward(l, supply("general"))
		assert.True(t, ok)
		assert.Equal(t, "general", got)
	})

	t.Run("NoLayerSupplies", func(t *testing.T) {
		t.Parallel()
		l := Layered[string]{General: "general"}
		got, ok := FirstInward(l, supply("missing"))
		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestConfig_Layers(t *testing.T) {
	t.Parallel()

	prefix := PrefixRepoOnly
	cfg := &Config{
		General: Layer{Orgs: map[string]OrgEntry{"rust-lang": {}}},
		Profiles: map[string]*Layer{
			"work": {Orgs: map[string]OrgEntry{
				"mozilla": {UnmatchedRepoPrefix: &prefix},
			}},
		},
	}

	t.Run("NoProfile", func(t *testing.T) {
		t.Parallel()
		layers, err := cfg.Layers("")
		require.NoError(t, err)
		assert.False(t, layers.HasProfile)
		assert.Same(t, &cfg.General, layers.General)
	})

	t.Run("NamedProfile", func(t *testing.T) {
		t.Parallel()
		layers, err := cfg.Layers("work")
		require.NoError(t, err)
		require.True(t, layers.HasProfile)
		assert.Same(t, cfg.Profiles["work"], layers.Profile)
		assert.Same(t, &cfg.General, layers.General)
	})

	t.Run("UnknownProfile", func(t *testing.T) {
		t.Parallel()
		_, err := cfg.Layers("nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownProfile)
		assert.Contains(t, err.Error(), `"nope"`)
	})
}
