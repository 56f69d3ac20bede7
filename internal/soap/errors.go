package soap

import "errors"

var (
	// ErrSerializingEnvelope is returned when the envelope document cannot
	// be written out.
	ErrSerializingEnvelope = errors.New("error serializing soap envelope")

	// ErrNotAnEnvelope is returned by [FindFault] for payloads that are not
	// a SOAP envelope with a Body.
	ErrNotAnEnvelope = errors.New("payload is not a soap envelope")
)
