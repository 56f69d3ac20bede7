// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

// Namespace URIs declared on every envelope.
const (
	NamespaceSOAP = "http://schemas.xmlsoap.org/soap/envelope/"
	NamespaceTNS  = "http://example.com/soap/SignerService"
	NamespaceWSSE = "http://docs.oasis-open.org/wss/2004/01/oasis-200401-wss-wssecurity-secext-1.0.xsd"
)

// Prefixes bound to the namespaces above.
const (
	PrefixSOAP = "soap"
	PrefixTNS  = "tns"
	PrefixWSSE = "wsse"
)

func qualified(prefix, local string) string {
	return prefix + ":" + local
}
