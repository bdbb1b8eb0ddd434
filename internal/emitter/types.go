// internal/emitter/types.go
package emitter

// Emitter delivers one cycle's encoded messages to the supervising
// computer. Messages within a call are delivered in order.
// Delivery only: no logic, no interpretation of payloads.
type Emitter interface {
	Emit(msgs [][]byte) error
}
