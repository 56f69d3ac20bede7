// Package soap builds the SOAP 1.1 envelopes sent to the upstream signing
// service and inspects its responses.
//
// Envelopes carry a WS-Security UsernameToken header with a plain text
// password and a SignTransactionRequest body. Construction is pure: the same
// credentials and transaction always yield byte-identical XML.
package soap
