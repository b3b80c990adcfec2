package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seo-microservice/internal/usecase"
)

func TestIndexabilityPolicy_IsIndexable(t *testing.T) {
	policy := usecase.IndexabilityPolicy{MinPublished: 3}

	assert.False(t, policy.IsIndexable(0))
	assert.False(t, policy.IsIndexable(2))
	assert.True(t, policy.IsIndexable(3))
	assert.True(t, policy.IsIndexable(4))
}

func TestIndexabilityPolicy_Monotonic(t *testing.T) {
	policy := usecase.IndexabilityPolicy{MinPublished: 5}

	prev := false
	for n := 0; n <= 10; n++ {
		curr := policy.IsIndexable(n)
		if prev {
			assert.True(t, curr, "indexability regressed at %d", n)
		}
		prev = curr
	}
}
