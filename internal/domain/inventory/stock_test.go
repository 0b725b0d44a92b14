package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustStock(t *testing.T) {
	cases := []struct {
		name    string
		current int64
		qty     int64
		dir     Direction
		want    int64
	}{
		{"reduce normal", 10, 3, DirectionReduce, 7},
		{"reduce a cero exacto", 3, 3, DirectionReduce, 0},
		{"reduce nunca negativo", 3, 5, DirectionReduce, 0},
		{"restore suma", 3, 5, DirectionRestore, 8},
		{"sentido desconocido suma", 1, 1, Direction("otro"), 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AdjustStock(tc.current, tc.qty, tc.dir))
		})
	}
}

func TestNormalizeQuantity(t *testing.T) {
	assert.Equal(t, int64(1), NormalizeQuantity(0))
	assert.Equal(t, int64(1), NormalizeQuantity(-4))
	assert.Equal(t, int64(6), NormalizeQuantity(6))
}
