package gen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/mapgen/compiler/load"
)

func TestWithHeader(t *testing.T) {
	t.Run("sets header", func(t *testing.T) {
		c := &Config{}
		err := WithHeader("// Custom header")(c)

		require.NoError(t, err)
		assert.Equal(t, "// Custom header", c.Header)
	})

	t.Run("empty header is allowed", func(t *testing.T) {
		c := &Config{Header: "existing"}
		err := WithHeader("")(c)

		require.NoError(t, err)
		assert.Equal(t, "", c.Header)
	})
}

func TestWithPackage(t *testing.T) {
	t.Run("sets package", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithPackage("github.com/test/project/mapper")(c))
		assert.Equal(t, "github.com/test/project/mapper", c.Package)
	})

	t.Run("empty package returns error", func(t *testing.T) {
		err := WithPackage("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithTarget(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithTarget("./mapper")(c))
	assert.Equal(t, "./mapper", c.Target)

	err := WithTarget("")(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
	assert.Equal(t, "./mapper", c.Target)
}

func TestWithRuntime(t *testing.T) {
	tests := []struct {
		name    string
		runtime Runtime
		wantErr bool
	}{
		{"legacy", Legacy, false},
		{"modern", Modern, false},
		{"zero", 0, true},
		{"unknown", Runtime(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithRuntime(tt.runtime)(c)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.runtime, c.Runtime)
			}
		})
	}
}

func TestWithClient(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithClient(ClientAnnotated)(c))
	assert.Equal(t, "annotated", c.Client.Name)

	err := WithClient(ClientFamily{})(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithNaming(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithNaming(Qualified)(c))
	assert.Equal(t, Qualified, c.Naming)

	err := WithNaming(NamingStrategy(7))(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithHooks(t *testing.T) {
	keep := func(_ *Table, a Artifact) (Artifact, bool) { return a, true }

	t.Run("appends in registration order", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithHooks(keep)(c))
		require.NoError(t, WithHooks(keep, keep)(c))
		assert.Len(t, c.Hooks, 3)
	})

	t.Run("nil hook returns error", func(t *testing.T) {
		c := &Config{}
		err := WithHooks(keep, nil)(c)
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Empty(t, c.Hooks)
	})
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(4)(c))
	assert.Equal(t, 4, c.workers())

	require.NoError(t, WithWorkers(0)(c))
	assert.Positive(t, c.workers())

	err := WithWorkers(-1)(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))
}

func TestWithLogger(t *testing.T) {
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := &Config{}
	require.NoError(t, WithLogger(l)(c))
	assert.Same(t, l, c.logger())

	err := WithLogger(nil)(c)
	require.Error(t, err)
	assert.True(t, IsConfigError(err))

	assert.Same(t, slog.Default(), (&Config{}).logger())
}

func TestWithProject(t *testing.T) {
	t.Run("applies project settings", func(t *testing.T) {
		c := &Config{}
		err := WithProject(&load.Project{
			Target:        "out",
			Package:       "example.com/app/mapper",
			Runtime:       "legacy",
			Client:        "none",
			Naming:        "qualified",
			RootInterface: "BaseMapper",
			Workers:       2,
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "out", c.Target)
		assert.Equal(t, "example.com/app/mapper", c.Package)
		assert.Equal(t, Legacy, c.Runtime)
		assert.Equal(t, "none", c.Client.Name)
		assert.Equal(t, Qualified, c.Naming)
		assert.Equal(t, "BaseMapper", c.RootInterface)
		assert.Equal(t, 2, c.Workers)
	})

	t.Run("defaults empty names", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithProject(&load.Project{})(c))
		assert.Equal(t, Modern, c.Runtime)
		assert.Equal(t, "mapped", c.Client.Name)
		assert.Equal(t, Plain, c.Naming)
	})

	t.Run("invalid values return error", func(t *testing.T) {
		for _, p := range []*load.Project{
			nil,
			{Runtime: "ibatis3"},
			{Client: "dynamic"},
			{Naming: "snake"},
		} {
			err := WithProject(p)(&Config{})
			require.Error(t, err)
			assert.True(t, IsConfigError(err))
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(
			WithHeader("h"),
			WithPackage(""),
			WithTarget("out"),
		)

		require.Error(t, err)
		assert.Equal(t, "h", c.Header)
		assert.Empty(t, c.Target)
	})

	t.Run("ApplyAll collects every error", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(
			WithPackage(""),
			WithTarget(""),
			WithHeader("h"),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "Target")
		assert.Equal(t, "h", c.Header)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, Modern, c.Runtime)
		assert.Equal(t, "mapped", c.Client.Name)
		assert.Equal(t, Plain, c.Naming)
	})

	t.Run("annotated client requires modern runtime", func(t *testing.T) {
		_, err := NewConfig(WithClient(ClientAnnotated), WithRuntime(Legacy))
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
		assert.Contains(t, err.Error(), "legacy")
	})

	t.Run("MustNewConfig panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithTarget("")) })
		assert.NotPanics(t, func() { MustNewConfig(WithTarget("out")) })
	})
}
