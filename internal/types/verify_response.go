package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// VerifyResponse verify response
//
// swagger:model verifyResponse
type VerifyResponse struct {

	// Lowercase hex address recovered from the signature
	// Required: true
	// Pattern: ^0x[0-9a-f]{40}$
	Recovered *string `json:"recovered"`

	// Whether the recovered address equals the expected owner
	// Required: true
	Valid *bool `json:"valid"`
}

// Validate validates this verify response
func (m *VerifyResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateRecovered(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateValid(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *VerifyResponse) validateRecovered(formats strfmt.Registry) error {

	if err := validate.Required("recovered", "body", m.Recovered); err != nil {
		return err
	}

	if err := validate.Pattern("recovered", "body", *m.Recovered, `^0x[0-9a-f]{40}$`); err != nil {
		return err
	}

	return nil
}

func (m *VerifyResponse) validateValid(formats strfmt.Registry) error {

	if err := validate.Required("valid", "body", m.Valid); err != nil {
		return err
	}

	return nil
}

// MarshalBinary interface implementation
func (m *VerifyResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *VerifyResponse) UnmarshalBinary(b []byte) error {
	var res VerifyResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
