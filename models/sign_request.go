// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignRequest is the JSON body accepted by POST /api/sign.
//
// Transaction is a pointer so that an absent or null "transaction" member
// can be told apart from an empty object.
type SignRequest struct {
	Username    string       `json:"username"`
	Password    string       `json:"password"`
	Transaction *Transaction `json:"transaction"`
}

// Credentials extracts the UsernameToken credentials of the request.
func (r SignRequest) Credentials() Credentials {
	return Credentials{Username: r.Username, Password: r.Password}
}
