// SPDX-License-Identifier: EPL-2.0

package utils

// CatmullRom evaluates the Catmull-Rom spline through four consecutive
// samples at fraction x in [0,1] between p1 and p2. It returns p1 exactly at
// x == 0.
func CatmullRom(p0, p1, p2, p3, x float32) float32 {
	c3 := 0.5 * (-p0 + 3*p1 - 3*p2 + p3)
	c2 := p0 - 2.5*p1 + 2*p2 - 0.5*p3
	c1 := 0.5 * (p2 - p0)

	return ((c3*x+c2)*x+c1)*x + p1
}
