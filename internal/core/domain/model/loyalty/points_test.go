package loyalty_test

import (
	"testing"

	"completion/internal/core/domain/model/loyalty"

	"github.com/stretchr/testify/assert"
)

func TestPointsForTotal(t *testing.T) {
	cases := []struct {
		name   string
		total  float64
		points int
	}{
		{name: "whole total", total: 25.00, points: 250},
		{name: "fractional points are floored", total: 19.99, points: 199},
		{name: "sub-point total", total: 0.05, points: 0},
		{name: "zero total", total: 0, points: 0},
		{name: "negative total awards nothing", total: -5, points: 0},
		{name: "round total", total: 10.00, points: 100},
		{name: "cents total", total: 7.34, points: 73},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.points, loyalty.PointsForTotal(tc.total))
		})
	}
}
