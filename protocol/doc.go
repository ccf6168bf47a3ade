// Package protocol owns the primitive field codecs of the legacy game wire
// format.
//
// Ownership boundary:
// - tagged primitive values (smart ints, obfuscated bytes, forced-order ints)
// - single-byte code page text
// - the Sink/Source contracts the host structural serializer implements
//
// Codecs only ever see a Sink; framing, struct layout and sequence prefixes
// belong to the host serializer (see package wire).
package protocol
