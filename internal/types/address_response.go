package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
)

// AddressResponse address response
//
// swagger:model addressResponse
type AddressResponse struct {

	// account Id
	// Required: true
	// Maximum: 65535
	// Minimum: 0
	AccountID *int64 `json:"accountId"`

	// Lowercase hex address of the derived account
	// Required: true
	// Pattern: ^0x[0-9a-f]{40}$
	Owner *string `json:"owner"`
}

// Validate validates this address response
func (m *AddressResponse) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAccountID(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateOwner(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *AddressResponse) validateAccountID(formats strfmt.Registry) error {

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

func (m *AddressResponse) validateOwner(formats strfmt.Registry) error {

	if err := validate.Required("owner", "body", m.Owner); err != nil {
		return err
	}

	if err := validate.Pattern("owner", "body", *m.Owner, `^0x[0-9a-f]{40}$`); err != nil {
		return err
	}

	return nil
}

// MarshalBinary interface implementation
func (m *AddressResponse) MarshalBinary() ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return swag.WriteJSON(m)
}

// UnmarshalBinary interface implementation
func (m *AddressResponse) UnmarshalBinary(b []byte) error {
	var res AddressResponse
	if err := swag.ReadJSON(b, &res); err != nil {
		return err
	}
	*m = res
	return nil
}
