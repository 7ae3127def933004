package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// PostSignPayload post sign payload
//
// swagger:model postSignPayload
type PostSignPayload struct {

	// Index of the derived account (last segment of m/44'/60'/0'/0/{accountId})
	// Example: 0
	// Required: true
	// Maximum: 65535
	// Minimum: 0
	AccountID *int64 `json:"accountId"`

	// Message to sign with the personal_sign prefix, may be empty
	// Example: hello
	// Required: true
	Message *string `json:"message"`
}

// Validate validates this post sign payload
func (m *PostSignPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAccountID(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateMessage(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostSignPayload) validateAccountID(formats strfmt.Registry) error {

	if err := validate.Required("accountId", "body", m.AccountID); err != nil {
		return err
	}

	if err := validate.MinimumInt("accountId", "body", *m.AccountID, 0, false); err != nil {
		return err
	}

	if err := validate.MaximumInt("accountId", "body", *m.AccountID, 65535, false); err != nil {
		return err
	}

	return nil
}

func (m *PostSignPayload) validateMessage(formats strfmt.Registry) error {

	if err := validate.Required("message", "body", m.Message); err != nil {
		return err
	}

	return nil
}

// MarshalBinary interface implementation
func (m *PostSignPayload) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *PostSignPayload) UnmarshalBinary(b []byte) error {
	var res PostSignPayload
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
