// Package codec abstracts the wire encoding used by programs built on
// lock-ordered state, so callers can swap JSON for a binary format
// without touching handler code.
package codec

type Codec interface {
	// Marshal encodes v into a byte slice.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into the value pointed to by v.
	Unmarshal(data []byte, v any) error
}
