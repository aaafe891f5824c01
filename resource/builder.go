package resource

import (
	"strings"

	"github.com/syssam/grom/naming"
)

// Builder builds URLs against a fixed endpoint.
type Builder struct {
	endpoint  string
	inflector *naming.Inflector
}

// NewBuilder returns a Builder for endpoint. A trailing slash is removed.
// A nil inflector selects the default ruleset.
func NewBuilder(endpoint string, inflector *naming.Inflector) *Builder {
	if inflector == nil {
		inflector = naming.NewInflector(nil)
	}
	return &Builder{
		endpoint:  strings.TrimRight(endpoint, "/"),
		inflector: inflector,
	}
}

// Endpoint returns the normalized endpoint.
func (b *Builder) Endpoint() string {
	return b.endpoint
}

// Base is BaseURL bound to the builder's endpoint.
func (b *Builder) Base(className string, id ...string) (string, error) {
	return baseURL(b.inflector.PluralPropertyName, b.endpoint, className, id...)
}

// All is AllURL bound to the builder's endpoint.
func (b *Builder) All(className string, segments ...string) (string, error) {
	return allURL(b.inflector.PluralPropertyName, b.endpoint, className, segments...)
}

// Association is AssociationURL bound to the builder's endpoint.
func (b *Builder) Association(owner Resource, associated string, opts ...Option) (string, error) {
	return associationURL(b.inflector.PropertyName, b.inflector.PluralPropertyName, b.endpoint, owner, associated, NewOptions(opts...))
}
