package sampletests

import (
	"net/http"
	"net/http/httptest"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/veralab/testscope/scope"
)

// DoHTTPServiceTests demonstrates private values with finalizers: each case
// gets its own mock HTTP server, torn down when the case ends.
func DoHTTPServiceTests(c *scope.Context) {
	expected := ldvalue.ObjectBuild().
		Set("status", ldvalue.Int(204)).
		Build()

	props := []scope.Property{
		{Name: "config", Value: scope.Shared(expected)},
		{Name: "server", Value: scope.PrivateFinalized(
			func() interface{} {
				return httptest.NewServer(httphelpers.HandlerWithStatus(204))
			},
			func(v interface{}) {
				v.(*httptest.Server).Close()
			},
		)},
	}

	runSet(c, "status service", props, func(c *scope.Context) {
		runCase(c, "returns the configured status", nil, func(c *scope.Context) {
			server := c.MustGet("server").(*httptest.Server)
			config := c.MustGet("config").(ldvalue.Value)

			resp, err := http.Get(server.URL)
			require.NoError(c, err)
			defer resp.Body.Close()
			assert.Equal(c, config.GetByKey("status").IntValue(), resp.StatusCode)
		})

		runCase(c, "handles each request it receives", nil, func(c *scope.Context) {
			handler, requests := httphelpers.RecordingHandler(httphelpers.HandlerWithStatus(200))
			recorded := httptest.NewServer(handler)
			defer recorded.Close()

			for i := 0; i < 2; i++ {
				resp, err := http.Get(recorded.URL)
				require.NoError(c, err)
				resp.Body.Close()
			}
			assert.Equal(c, 2, len(requests))
		})
	})
}
