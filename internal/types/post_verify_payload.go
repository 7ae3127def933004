package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostVerifyPayload post verify payload
//
// swagger:model postVerifyPayload
type PostVerifyPayload struct {

	// Expected signer address (any hex case)
	// Example: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{40}$
	Owner *string `json:"owner"`

	// The signed message
	// Required: true
	Message *string `json:"message"`

	// Hex r || s || v signature
	// Required: true
	// Pattern: ^0x[0-9a-fA-F]{130}$
	Signature *string `json:"signature"`
}

// Validate validates this post verify payload
func (m *PostVerifyPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateOwner(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateMessage(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateSignature(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostVerifyPayload) validateOwner(formats strfmt.Registry) error {

	if err := validate.Required("owner", "body", m.Owner); err != nil {
		return err
	}

	if err := validate.Pattern("owner", "body", *m.Owner, `^0x[0-9a-fA-F]{40}$`); err != nil {
		return err
	}

	return nil
}

func (m *PostVerifyPayload) validateMessage(formats strfmt.Registry) error {

	if err := validate.Required("message", "body", m.Message); err != nil {
		return err
	}

	return nil
}

func (m *PostVerifyPayload) validateSignature(formats strfmt.Registry) error {

	if err := validate.Required("signature", "body", m.Signature); err != nil {
		return err
	}

	if err := validate.Pattern("signature", "body", *m.Signature, `^0x[0-9a-fA-F]{130}$`); err != nil {
		return err
	}

	return nil
}

// MarshalBinary interface implementation
func (m *PostVerifyPayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostVerifyPayload) UnmarshalBinary(b []byte) error {
	var res PostVerifyPayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
