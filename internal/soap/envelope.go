// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/MKhiriev/go-soap-gateway/models"
)

const indentSpaces = 2

// BuildEnvelope renders the SignTransactionRequest envelope for tx,
// authenticated with creds:
//
//	soap:Envelope
//	  soap:Header/wsse:Security/wsse:UsernameToken/{wsse:Username, wsse:Password}
//	  soap:Body/tns:SignTransactionRequest/tns:Transaction/
//	    {tns:Id, tns:Payer, tns:Payee, tns:Amount, tns:Currency, tns:Description}
//
// Field presence is not checked here; callers validate their input first.
func BuildEnvelope(creds models.Credentials, tx models.Transaction) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	envelope := doc.CreateElement(qualified(PrefixSOAP, "Envelope"))
	envelope.CreateAttr("xmlns:"+PrefixSOAP, NamespaceSOAP)
	envelope.CreateAttr("xmlns:"+PrefixTNS, NamespaceTNS)
	envelope.CreateAttr("xmlns:"+PrefixWSSE, NamespaceWSSE)

	appendSecurityHeader(envelope, creds)
	appendSignRequestBody(envelope, tx)

	doc.Indent(indentSpaces)
	xml, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerializingEnvelope, err)
	}

	return xml, nil
}

func appendSecurityHeader(envelope *etree.Element, creds models.Credentials) {
	token := envelope.
		CreateElement(qualified(PrefixSOAP, "Header")).
		CreateElement(qualified(PrefixWSSE, "Security")).
		CreateElement(qualified(PrefixWSSE, "UsernameToken"))

	token.CreateElement(qualified(PrefixWSSE, "Username")).SetText(creds.Username)
	token.CreateElement(qualified(PrefixWSSE, "Password")).SetText(creds.Password)
}

func appendSignRequestBody(envelope *etree.Element, tx models.Transaction) {
	transaction := envelope.
		CreateElement(qualified(PrefixSOAP, "Body")).
		CreateElement(qualified(PrefixTNS, "SignTransactionRequest")).
		CreateElement(qualified(PrefixTNS, "Transaction"))

	// order is part of the upstream contract
	fields := []struct {
		name  string
		value string
	}{
		{"Id", tx.ID},
		{"Payer", tx.Payer},
		{"Payee", tx.Payee},
		{"Amount", tx.AmountText()},
		{"Currency", tx.Currency},
		{"Description", tx.Description},
	}
	for _, f := range fields {
		transaction.CreateElement(qualified(PrefixTNS, f.name)).SetText(f.value)
	}
}
