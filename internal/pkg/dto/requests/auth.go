package requests

import "mime/multipart"

type Login struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Redirect string `json:"redirect,omitempty"`
}

// BackendLogin is the body sent to the backend authentication endpoint.
type BackendLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,contact_email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=doctor patient moderator clinic hospital pharmacy laboratory"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`

	Attachments []RegisterAttachment `json:"-" validate:"-"`
}

type RegisterAttachment struct {
	FieldName string
	Header    *multipart.FileHeader
}
