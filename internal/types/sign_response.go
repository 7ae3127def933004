package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// SignResponse sign response
//
// swagger:model signResponse
type SignResponse struct {

	// Lowercase hex address of the derived account
	// Example: 0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266
	// Required: true
	// Pattern: ^0x[0-9a-f]{40}$
	Owner *string `json:"owner"`

	// The signed message, echoed verbatim
	// Required: true
	Message *string `json:"message"`

	// Lowercase hex r || s || v signature, v is 27 or 28
	// Required: true
	// Pattern: ^0x[0-9a-f]{130}$
	Signature *string `json:"signature"`
}

// Validate validates this sign response
func (m *SignResponse) Validate(formats strfmt.Registry) error {
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

func (m *SignResponse) validateOwner(formats strfmt.Registry) error {

	if err := validate.Required("owner", "body", m.Owner); err != nil {
		return err
	}

	if err := validate.Pattern("owner", "body", *m.Owner, `^0x[0-9a-f]{40}$`); err != nil {
		return err
	}

	return nil
}

func (m *SignResponse) validateMessage(formats strfmt.Registry) error {

	if err := validate.Required("message", "body", m.Message); err != nil {
		return err
	}

	return nil
}

func (m *SignResponse) validateSignature(formats strfmt.Registry) error {

	if err := validate.Required("signature", "body", m.Signature); err != nil {
		return err
	}

	if err := validate.Pattern("signature", "body", *m.Signature, `^0x[0-9a-f]{130}$`); err != nil {
		return err
	}

	return nil
}

// MarshalBinary interface implementation
func (m *SignResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *SignResponse) UnmarshalBinary(b []byte) error {
	var res SignResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
