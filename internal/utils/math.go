// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между двумя точками
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normalize возвращает единичный вектор. Для нулевого вектора ok == false.
func Normalize(dx, dy float64) (nx, ny float64, ok bool) {
	length := math.Sqrt(dx*dx + dy*dy)
	if length == 0 {
		return 0, 0, false
	}
	return dx / length, dy / length, true
}
