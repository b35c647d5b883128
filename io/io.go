// Package io defines the basic interfaces for working
// with a 6502 family based I/O port (generally bi-directional).
// Implementors of I/O chips (such as a 6522) consult the input
// interface on register reads and expose their latched outputs
// through the output interface so collaborators (displays, serial
// sinks) can observe pin state without cross coupling chip logic.
package io

// PortIn8 defines an 8 bit input port.
type PortIn8 interface {
	// Input will return the current value being set on the given input port.
	Input() uint8
}

// PortOut8 defines an 8 bit output port.
type PortOut8 interface {
	// Output returns the current value latched onto the output port.
	Output() uint8
}
