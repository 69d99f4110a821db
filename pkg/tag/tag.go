// Package tag parses the compact tags used to address an application
// (org/app) or one version of it (org/app:version).
package tag

import (
	"strings"

	"apidoc.me/pkg/cmderr"
)

// Repo identifies an application within an organization.
type Repo struct {
	Org string
	App string
}

func (r Repo) String() string {
	return r.Org + "/" + r.App
}

// Revision identifies a single version of an application.
type Revision struct {
	Repo
	Version string
}

func (r Revision) String() string {
	return r.Repo.String() + ":" + r.Version
}

// ParseRepo parses a tag of the form "org/app".
// Everything after the first '/' is the application key.
func ParseRepo(tag string) (Repo, error) {
	org, app, ok := strings.Cut(tag, "/")
	switch {
	case !ok:
		return Repo{}, cmderr.Newf("failed to locate `/` in tag: %s", tag)
	case org == "":
		return Repo{}, cmderr.Newf("organization was empty in tag: %s", tag)
	case app == "":
		return Repo{}, cmderr.Newf("application was empty in tag: %s", tag)
	}
	return Repo{Org: org, App: app}, nil
}

// Parse parses a tag of the form "org/app:version".
//
// The organization ends at the first '/' and the application ends at the
// first ':' after it. The parts are returned exactly as written.
func Parse(tag string) (Revision, error) {
	repo, err := ParseRepo(tag)
	if err != nil {
		return Revision{}, err
	}
	app, version, ok := strings.Cut(repo.App, ":")
	switch {
	case !ok:
		return Revision{}, cmderr.Newf("failed to locate `:` in tag: %s", tag)
	case app == "":
		return Revision{}, cmderr.Newf("application was empty in tag: %s", tag)
	case version == "":
		return Revision{}, cmderr.Newf("version was empty in tag: %s", tag)
	}
	return Revision{Repo: Repo{Org: repo.Org, App: app}, Version: version}, nil
}
