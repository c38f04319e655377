package y4m

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBToYUV_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		y, u, v uint8
	}{
		{"black", 0, 0, 0, 0, 128, 128},
		{"white", 255, 255, 255, 255, 128, 128},
		{"red", 255, 0, 0, 76, 85, 255},
		{"green", 0, 255, 0, 149, 44, 22},
		{"blue", 0, 0, 255, 29, 255, 108},
		{"yellow", 255, 255, 0, 225, 1, 148},
		{"mid gray", 128, 128, 128, 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, u, v := RGBToYUV(tt.r, tt.g, tt.b)
			assert.Equal(t, []uint8{tt.y, tt.u, tt.v}, []uint8{y, u, v})
		})
	}
}

func TestRGBToYUV_GraysHaveNeutralChroma(t *testing.T) {
	for i := 0; i <= 255; i++ {
		c := uint8(i)
		y, u, v := RGBToYUV(c, c, c)
		assert.Equal(t, c, y, "luma of gray %d", i)
		assert.Equal(t, uint8(128), u, "U of gray %d", i)
		assert.Equal(t, uint8(128), v, "V of gray %d", i)
	}
}

// reference evaluates the matrix directly on wide integers.
func reference(r, g, b int) (int, int, int) {
	y := (299*r + 587*g + 114*b) / 1000
	u := (-169*r-331*g+500*b)/1000 + 128
	v := (500*r-419*g-81*b)/1000 + 128
	return y, u, v
}

func saturate(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

func TestRGBToYUV_MatchesMatrix(t *testing.T) {
	for r := 0; r <= 255; r += 5 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 5 {
				ry, ru, rv := reference(r, g, b)
				y, u, v := RGBToYUV(uint8(r), uint8(g), uint8(b))
				if y != saturate(ry) || u != saturate(ru) || v != saturate(rv) {
					t.Fatalf("(%d,%d,%d): got (%d,%d,%d), want (%d,%d,%d)",
						r, g, b, y, u, v, saturate(ry), saturate(ru), saturate(rv))
				}
			}
		}
	}
}

func TestClampU8(t *testing.T) {
	assert.Equal(t, uint8(0), clampU8(-1))
	assert.Equal(t, uint8(0), clampU8(-300))
	assert.Equal(t, uint8(0), clampU8(0))
	assert.Equal(t, uint8(200), clampU8(200))
	assert.Equal(t, uint8(255), clampU8(255))
	assert.Equal(t, uint8(255), clampU8(256))
	assert.Equal(t, uint8(255), clampU8(1000))
}

func TestConvertFrame(t *testing.T) {
	pixels := []Pixel{{R: 255}, {G: 255}, {B: 255}}
	y := make([]byte, 3)
	u := make([]byte, 3)
	v := make([]byte, 3)

	ConvertFrame(pixels, y, u, v)

	assert.Equal(t, []byte{76, 149, 29}, y)
	assert.Equal(t, []byte{85, 44, 255}, u)
	assert.Equal(t, []byte{255, 22, 108}, v)
}

func TestConvertFrame_LeavesTailUntouched(t *testing.T) {
	y := []byte{1, 2, 3}
	u := []byte{1, 2, 3}
	v := []byte{1, 2, 3}

	ConvertFrame([]Pixel{{}}, y, u, v)

	assert.Equal(t, []byte{0, 2, 3}, y)
	assert.Equal(t, []byte{128, 2, 3}, u)
	assert.Equal(t, []byte{128, 2, 3}, v)
}
