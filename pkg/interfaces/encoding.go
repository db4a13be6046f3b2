package interfaces

// Encoder serializes processed records into a caller-chosen wire format.
// Encoding failures are fatal and surfaced to the caller verbatim; the
// pipeline itself never inspects the encoded bytes.
type Encoder interface {
	Encode(v any) ([]byte, error)
}
