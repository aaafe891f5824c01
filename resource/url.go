// Package resource derives REST resource URLs from class names and
// association names.
//
// Collections and members are addressed by the plural property name of the
// class:
//
//	resource.BaseURL(endpoint, "ContactPerson", "1") // {endpoint}/contact_people/1
//	resource.AllURL(endpoint, "ContactPerson", "members", "current")
//	// {endpoint}/contact_people/members/current
//
// Associations are rooted at the owner and carry the Turtle suffix:
//
//	resource.AssociationURL(endpoint, person, "Party", resource.Options{Optional: "current"})
//	// {endpoint}/dummy_people/1/parties/current.ttl
package resource

import (
	"strings"

	"github.com/syssam/grom"
	"github.com/syssam/grom/naming"
	"github.com/syssam/grom/rdf"
)

// TurtleSuffix is appended to association URLs to request Turtle.
const TurtleSuffix = ".ttl"

// Resource is an object that association URLs can be rooted at.
type Resource interface {
	// ClassName returns the CamelCase singular class name, e.g. "DummyPerson".
	ClassName() string
	// ID returns the identifier: a bare id or a URI ending in it.
	ID() string
}

// Options qualifies an association URL.
type Options struct {
	// Optional is an extra path segment appended after the association
	// name, e.g. a state filter such as "current".
	Optional string
	// Single selects the singular association name.
	Single bool
}

// Option configures Options.
type Option func(*Options)

// Single selects singular association naming.
func Single() Option {
	return func(o *Options) {
		o.Single = true
	}
}

// Optional appends segment after the association name.
func Optional(segment string) Option {
	return func(o *Options) {
		o.Optional = segment
	}
}

// NewOptions builds Options from functional options.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BaseURL returns {endpoint}/{plural property name}, followed by /{id} when
// an id is given. Only the first id is used.
func BaseURL(endpoint, className string, id ...string) (string, error) {
	return baseURL(naming.PluralPropertyName, endpoint, className, id...)
}

// AllURL returns {endpoint}/{plural property name} followed by every
// segment, in order.
func AllURL(endpoint, className string, segments ...string) (string, error) {
	return allURL(naming.PluralPropertyName, endpoint, className, segments...)
}

// AssociationURL returns the Turtle URL of the association named by the
// associated class, rooted at owner. A nil owner yields a
// *grom.MissingDependencyError.
func AssociationURL(endpoint string, owner Resource, associated string, opts Options) (string, error) {
	return associationURL(naming.PropertyName, naming.PluralPropertyName, endpoint, owner, associated, opts)
}

type inflection func(string) (string, error)

func baseURL(plural inflection, endpoint, className string, id ...string) (string, error) {
	name, err := plural(className)
	if err != nil {
		return "", err
	}
	if len(id) > 0 && id[0] != "" {
		return join(endpoint, name, id[0]), nil
	}
	return join(endpoint, name), nil
}

func allURL(plural inflection, endpoint, className string, segments ...string) (string, error) {
	name, err := plural(className)
	if err != nil {
		return "", err
	}
	return join(endpoint, append([]string{name}, segments...)...), nil
}

func associationURL(singular, plural inflection, endpoint string, owner Resource, associated string, opts Options) (string, error) {
	if owner == nil {
		return "", grom.NewMissingDependencyError(associated, "owner", nil)
	}
	ownerName, err := plural(owner.ClassName())
	if err != nil {
		return "", err
	}
	name := plural
	if opts.Single {
		name = singular
	}
	assoc, err := name(associated)
	if err != nil {
		return "", err
	}
	parts := []string{ownerName, rdf.LocalID(owner.ID()), assoc}
	if opts.Optional != "" {
		parts = append(parts, opts.Optional)
	}
	return join(endpoint, parts...) + TurtleSuffix, nil
}

// join concatenates endpoint and parts with exactly one slash between them.
func join(endpoint string, parts ...string) string {
	var b strings.Builder
	b.WriteString(endpoint)
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(strings.Trim(p, "/"))
	}
	return b.String()
}
