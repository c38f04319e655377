package y4m

// BT.601 full range coefficients scaled by 1000.
const (
	yr, yg, yb = 299, 587, 114
	ur, ug, ub = -169, -331, 500
	vr, vg, vb = 500, -419, -81

	chromaBias = 128
)

// RGBToYUV converts one RGB triple to full range YUV.
//
// Each component is computed in fixed point, truncated toward zero and
// saturated to [0, 255].
func RGBToYUV(r, g, b uint8) (y, u, v uint8) {
	ri, gi, bi := int32(r), int32(g), int32(b)
	y = clampU8((yr*ri + yg*gi + yb*bi) / 1000)
	u = clampU8((ur*ri+ug*gi+ub*bi)/1000 + chromaBias)
	v = clampU8((vr*ri+vg*gi+vb*bi)/1000 + chromaBias)
	return y, u, v
}

// ConvertFrame converts pixels into the three planes. Only the first
// len(pixels) bytes of each plane are written; planes must be at least
// that long.
func ConvertFrame(pixels []Pixel, yPlane, uPlane, vPlane []byte) {
	yPlane = yPlane[:len(pixels)]
	uPlane = uPlane[:len(pixels)]
	vPlane = vPlane[:len(pixels)]
	for i, p := range pixels {
		yPlane[i], uPlane[i], vPlane[i] = RGBToYUV(p.R, p.G, p.B)
	}
}

func clampU8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
