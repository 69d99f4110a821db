// Package apidoc contains the records exchanged with the apidoc API.
package apidoc

// Error is a single error reported by the API.
// Failed requests carry a list of them.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Validation is the result of validating a specification document.
// Valid is reported independently of the HTTP status code.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Code is source code generated for one version of an application.
type Code struct {
	Generator Generator `json:"generator"`
	Source    string    `json:"source"`
}

// Generator describes a code generation target.
type Generator struct {
	GUID        string     `json:"guid"`
	Key         string     `json:"key"`
	URI         string     `json:"uri"`
	Name        string     `json:"name"`
	Language    *string    `json:"language,omitempty"`
	Description *string    `json:"description,omitempty"`
	Visibility  Visibility `json:"visibility"`
	Owner       User       `json:"owner"`
	Enabled     bool       `json:"enabled"`
}

// User is a person interacting with the apidoc server.
type User struct {
	GUID     string  `json:"guid"`
	Email    string  `json:"email"`
	Nickname string  `json:"nickname"`
	Name     *string `json:"name,omitempty"`
}

// Reference points to another record.
type Reference struct {
	GUID string `json:"guid"`
	Key  string `json:"key"`
}

// Version is a single published version of an application.
type Version struct {
	GUID         string    `json:"guid"`
	Organization Reference `json:"organization"`
	Application  Reference `json:"application"`
	Version      string    `json:"version"`
	Original     *Original `json:"original,omitempty"`
}

// Original is the document a version was created from.
type Original struct {
	Type OriginalType `json:"type"`
	Data string       `json:"data"`
}

// OriginalForm is the document submitted for a new version.
// A nil Type lets the server detect the format.
type OriginalForm struct {
	Type *OriginalType `json:"type,omitempty"`
	Data string        `json:"data"`
}

// VersionForm is the request body used to publish a version.
type VersionForm struct {
	OriginalForm OriginalForm `json:"original_form"`
	Visibility   *Visibility  `json:"visibility,omitempty"`
}
