package sampletests

import (
	"bytes"

	"github.com/stretchr/testify/assert"

	"github.com/veralab/testscope/scope"
)

// DoPropertyTests demonstrates the two property lifetimes: a shared value
// read identically by every case, and private scratch state built fresh for
// each case that touches it.
func DoPropertyTests(c *scope.Context) {
	sharedProps := []scope.Property{
		{Name: "greeting", Value: scope.Shared("hello")},
	}
	runSet(c, "shared values", sharedProps, func(c *scope.Context) {
		runCase(c, "is visible to a case", nil, func(c *scope.Context) {
			assert.Equal(c, "hello", c.MustGet("greeting"))
		})

		runCase(c, "combines with case-level declarations", []scope.Property{
			{Name: "audience", Value: scope.Shared("world")},
		}, func(c *scope.Context) {
			greeting := c.MustGet("greeting").(string)
			audience := c.MustGet("audience").(string)
			assert.Equal(c, "hello world", greeting+" "+audience)
		})
	})

	privateProps := []scope.Property{
		{Name: "scratch", Value: scope.Private(func() interface{} {
			return &bytes.Buffer{}
		})},
	}
	runSet(c, "private values", privateProps, func(c *scope.Context) {
		runCase(c, "starts fresh", nil, func(c *scope.Context) {
			buf := c.MustGet("scratch").(*bytes.Buffer)
			assert.Zero(c, buf.Len())
			buf.WriteString("case-local state")
		})

		runCase(c, "is not shared with the previous case", nil, func(c *scope.Context) {
			buf := c.MustGet("scratch").(*bytes.Buffer)
			assert.Zero(c, buf.Len(), "a private value must be rebuilt per case")
		})

		runCase(c, "is cached within one case", nil, func(c *scope.Context) {
			first := c.MustGet("scratch").(*bytes.Buffer)
			first.WriteString("x")
			second := c.MustGet("scratch").(*bytes.Buffer)
			assert.Equal(c, 1, second.Len(), "both reads must see the same buffer")
		})
	})
}
