// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package soap

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/MKhiriev/go-soap-gateway/models"
)

// FindFault reports the soap:Fault carried in the Body of a response
// envelope. It returns (nil, nil) for a well-formed envelope without a fault
// and an error when the payload is not XML or is not a SOAP envelope.
//
// Both SOAP 1.1 (faultcode/faultstring) and SOAP 1.2 (Code/Value,
// Reason/Text) layouts are recognised. Elements are matched by local name.
func FindFault(payload []byte) (*models.SOAPFault, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(payload); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotAnEnvelope, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "Envelope" {
		return nil, ErrNotAnEnvelope
	}

	body := root.SelectElement("Body")
	if body == nil {
		return nil, fmt.Errorf("%w: no Body element", ErrNotAnEnvelope)
	}

	fault := body.SelectElement("Fault")
	if fault == nil {
		return nil, nil
	}

	return &models.SOAPFault{
		Code:   firstText(fault, "faultcode", "Code/Value"),
		String: firstText(fault, "faultstring", "Reason/Text"),
	}, nil
}

// firstText returns the trimmed text of the first path (slash separated
// local names below e) that resolves to an element.
func firstText(e *etree.Element, paths ...string) string {
	for _, path := range paths {
		cur := e
		for _, name := range strings.Split(path, "/") {
			if cur = cur.SelectElement(name); cur == nil {
				break
			}
		}
		if cur != nil {
			return strings.TrimSpace(cur.Text())
		}
	}
	return ""
}
