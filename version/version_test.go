// version_test.go
package version

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestUserAgent verifies that the UserAgent function returns the expected user agent string
func TestUserAgent(t *testing.T) {
	expectedUserAgent := fmt.Sprintf("%s/%s", AppName, Version)
	userAgent := UserAgent()

	assert.Equal(t, expectedUserAgent, userAgent, "User agent string should match expected format")
}
