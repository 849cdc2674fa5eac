package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	assert.Equal(t, 0.0, Rate(5, 0))
	assert.Equal(t, 0.0, Rate(0, 10))
	assert.Equal(t, 50.0, Rate(1, 2))
	assert.Equal(t, 22.73, Rate(75, 330))
	assert.Equal(t, 33.33, Rate(1, 3))
	assert.Equal(t, 66.67, Rate(2, 3))
	assert.Equal(t, -30.0, Rate(-3, 10))
}
