package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	// Buckets tile [0, MaxIndex) contiguously with imbalance of at most one
	for _, tc := range [][2]int{{1, 1}, {2, 10}, {3, 10}, {4, 4}, {7, 100}, {3, 2}} {
		np, n := tc[0], tc[1]
		pm := NewPartitionMap(np, n)
		prev := 0
		minDim, maxDim := n, 0
		for bn := 0; bn < np; bn++ {
			kMin, kMax := pm.GetBucketRange(bn)
			assert.Equal(t, prev, kMin)
			assert.True(t, kMax >= kMin)
			dim := pm.GetBucketDimension(bn)
			assert.Equal(t, kMax-kMin, dim)
			if dim < minDim {
				minDim = dim
			}
			if dim > maxDim {
				maxDim = dim
			}
			prev = kMax
		}
		assert.Equal(t, n, prev)
		assert.True(t, maxDim-minDim <= 1, "np,n = %d,%d", np, n)
	}
}
