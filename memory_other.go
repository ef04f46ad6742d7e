//go:build !linux

package faros

func totalMemoryGB() float64 {
	return 0
}
