// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Transaction is the financial record that the upstream service signs.
//
// Amount is kept as an exact decimal so that the value the caller sent is
// rendered into the envelope without binary floating point artefacts.
// No precision or currency validation is performed.
type Transaction struct {
	ID          string          `json:"id"`
	Payer       string          `json:"payer"`
	Payee       string          `json:"payee"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description"`
}

// AmountText returns the canonical decimal representation of Amount:
// '.' as decimal point, no grouping, no trailing zeros (10.50 -> "10.5").
func (t Transaction) AmountText() string {
	return t.Amount.String()
}

// MarshalZerologObject implements [zerolog.LogObjectMarshaler].
func (t Transaction) MarshalZerologObject(e *zerolog.Event) {
	e.Str("id", t.ID).
		Str("payer", t.Payer).
		Str("payee", t.Payee).
		Str("amount", t.AmountText()).
		Str("currency", t.Currency)
}
