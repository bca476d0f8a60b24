// Package ptr helps building models with optional fields.
package ptr

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}
