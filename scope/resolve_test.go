package scope

import (
	"bytes"
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOutsideAnyCase(t *testing.T) {
	var rootErr, setErr error
	Run(func(c *Context) {
		_, rootErr = c.Get("anything")
		_ = c.RunSet("group", []Property{{Name: "x", Value: Shared(1)}}, func(c *Context) {
			_, setErr = c.Get("x")
		})
	})
	assert.ErrorIs(t, rootErr, ErrOutOfContext)
	assert.ErrorIs(t, setErr, ErrOutOfContext, "a set body is not a test case")
}

func TestGetUndeclaredProperty(t *testing.T) {
	var getErr error
	Run(func(c *Context) {
		_ = c.RunSet("context", nil, func(c *Context) {
			_ = c.RunCase("case", nil, func(c *Context) {
				_, getErr = c.Get("missing")
			})
		})
	})
	require.Error(t, getErr)
	assert.ErrorIs(t, getErr, ErrPropertyNotFound)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(getErr, &customErr))
	prop, ok := customErr.GetMetadata(MetaKeyProperty)
	assert.True(t, ok)
	assert.Equal(t, "missing", prop)
	name, ok := customErr.GetMetadata(MetaKeyTestName)
	assert.True(t, ok)
	assert.Equal(t, "context/case", name)
}

func TestSharedValueIdentityAcrossCases(t *testing.T) {
	type config struct{ n int }
	shared := &config{n: 41}
	var seen []interface{}
	Run(func(c *Context) {
		_ = c.RunSet("group", []Property{{Name: "cfg", Value: Shared(shared)}}, func(c *Context) {
			_ = c.RunCase("one", nil, func(c *Context) {
				seen = append(seen, c.MustGet("cfg"), c.MustGet("cfg"))
			})
			_ = c.RunCase("two", nil, func(c *Context) {
				seen = append(seen, c.MustGet("cfg"))
			})
		})
	})
	require.Len(t, seen, 3)
	for _, v := range seen {
		assert.Same(t, shared, v)
	}
}

func TestPrivateValueMadeLazilyOncePerCase(t *testing.T) {
	made := 0
	madeAfterUnreadCase := -1
	sameWithinCase := false
	props := []Property{{Name: "scratch", Value: Private(func() interface{} {
		made++
		return new(bytes.Buffer)
	})}}
	Run(func(c *Context) {
		_ = c.RunSet("group", props, func(c *Context) {
			_ = c.RunCase("never reads", nil, func(c *Context) {})
			madeAfterUnreadCase = made
			_ = c.RunCase("reads twice", nil, func(c *Context) {
				first := c.MustGet("scratch")
				second := c.MustGet("scratch")
				sameWithinCase = first == second
			})
			_ = c.RunCase("reads again", nil, func(c *Context) {
				_ = c.MustGet("scratch")
			})
		})
	})
	assert.Equal(t, 0, madeAfterUnreadCase, "factory must not run for a case that never reads")
	assert.True(t, sameWithinCase, "repeated reads in one case must hit the cache")
	assert.Equal(t, 2, made, "one materialization per reading case")
}

func TestFinalizerRunsExactlyOnceIffRead(t *testing.T) {
	var events []string
	props := []Property{{Name: "conn", Value: PrivateFinalized(
		func() interface{} {
			events = append(events, "make")
			return "conn-value"
		},
		func(v interface{}) {
			events = append(events, "finalize:"+v.(string))
		},
	)}}
	Run(func(c *Context) {
		_ = c.RunSet("group", props, func(c *Context) {
			_ = c.RunCase("untouched", nil, func(c *Context) {
				events = append(events, "untouched-body")
			})
			_ = c.RunCase("touched", nil, func(c *Context) {
				_ = c.MustGet("conn")
				events = append(events, "touched-body-done")
			})
		})
	})
	assert.Equal(t, []string{
		"untouched-body",
		"make",
		"touched-body-done",
		"finalize:conn-value",
	}, events)
}

func TestSharedPropertiesFromNestedScopes(t *testing.T) {
	var fooVal, barVal interface{}
	var missingErr error
	Run(func(c *Context) {
		_ = c.RunSet("context", nil, func(c *Context) {
			_ = c.RunSet("properties", nil, func(c *Context) {
				_ = c.RunSet("with shared foo", []Property{{Name: "foo", Value: Shared("foo")}}, func(c *Context) {
					_ = c.RunCase("with shared bar", []Property{{Name: "bar", Value: Shared("bar")}}, func(c *Context) {
						fooVal = c.MustGet("foo")
						barVal = c.MustGet("bar")
					})
					_ = c.RunCase("without bar", nil, func(c *Context) {
						_, missingErr = c.Get("bar")
					})
				})
			})
		})
	})
	assert.Equal(t, "foo", fooVal)
	assert.Equal(t, "bar", barVal)
	assert.ErrorIs(t, missingErr, ErrPropertyNotFound, "a sibling case's declarations must not leak")
}

func TestMustGetFailsTheTest(t *testing.T) {
	reached := false
	results := Run(func(c *Context) {
		_ = c.RunCase("bad read", nil, func(c *Context) {
			_ = c.MustGet("nope")
			reached = true
		})
	})
	assert.False(t, reached, "MustGet must exit the test on error")
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "bad read", results.Failures[0].TestID.String())
}

func TestFinalizerPanicStillRunsRemainingCleanup(t *testing.T) {
	finalizedOther := 0
	props := []Property{
		{Name: "bad", Value: PrivateFinalized(
			func() interface{} { return "bad" },
			func(interface{}) { panic("finalizer exploded") },
		)},
		{Name: "good", Value: PrivateFinalized(
			func() interface{} { return "good" },
			func(interface{}) { finalizedOther++ },
		)},
	}
	results := Run(func(c *Context) {
		_ = c.RunSet("group", props, func(c *Context) {
			_ = c.RunCase("reads both", nil, func(c *Context) {
				_ = c.MustGet("bad")
				_ = c.MustGet("good")
			})
		})
	})
	assert.Equal(t, 1, finalizedOther, "remaining finalizers must run after one panics")
	require.NotEmpty(t, results.Failures, "the finalizer panic must surface as a failure")
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "finalizer exploded")
}
