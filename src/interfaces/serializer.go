package interfaces

// -----------------------------------------------------------------------------

// ISerializer defines the contract for marshaling and unmarshaling data.
// This interface keeps the NATS publisher agnostic about the wire format.
type ISerializer interface {
	// Marshal converts a Go object (struct) into a byte slice.
	Marshal(obj any) ([]byte, error)

	// Unmarshal converts a byte slice back into a Go object.
	Unmarshal(data []byte, obj any) error
}
