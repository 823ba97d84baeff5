package main

import (
	"testing"

	"fundamentals/core"

	"github.com/stretchr/testify/assert"
)

func TestCORSConfig(t *testing.T) {
	c := corsConfig(&core.Config{Environment: "development"})
	assert.True(t, c.AllowAllOrigins)
	assert.Contains(t, c.AllowHeaders, "X-Request-ID")
	assert.NoError(t, c.Validate())

	c = corsConfig(&core.Config{Environment: "production", CORSAllowedOrigins: []string{" https://app.example ", ""}})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"https://app.example"}, c.AllowOrigins)
	assert.NoError(t, c.Validate())

	c = corsConfig(&core.Config{Environment: "production"})
	assert.False(t, c.AllowAllOrigins)
	assert.NotNil(t, c.AllowOriginFunc)
	assert.False(t, c.AllowOriginFunc("https://evil.example"))
	assert.NoError(t, c.Validate())
}
