package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// GetAddressRouteParams are the path params of GET /address/{accountId}
//
// swagger:parameters getAddressRoute
type GetAddressRouteParams struct {

	// Index of the derived account
	// Required: true
	// Maximum: 65535
	// Minimum: 0
	// In: path
	AccountID int64 `param:"accountId"`
}

// NewGetAddressRouteParams creates a new GetAddressRouteParams object
// no default values defined.
func NewGetAddressRouteParams() GetAddressRouteParams {
	return GetAddressRouteParams{}
}

// Validate validates this get address route params
func (o *GetAddressRouteParams) Validate(formats strfmt.Registry) error {
	var res []error

	if err := o.validateAccountID(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (o *GetAddressRouteParams) validateAccountID(formats strfmt.Registry) error {

	if err := validate.MinimumInt("accountId", "path", o.AccountID, 0, false); err != nil {
		return err
	}

	if err := validate.MaximumInt("accountId", "path", o.AccountID, 65535, false); err != nil {
		return err
	}

	return nil
}
