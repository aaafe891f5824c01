package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/grom"
	"github.com/syssam/grom/naming"
	"github.com/syssam/grom/resource"
)

const endpoint = "https://api.example.com"

type dummyPerson struct{ id string }

func (dummyPerson) ClassName() string { return "DummyPerson" }
func (p dummyPerson) ID() string     { return p.id }

func TestBaseURL(t *testing.T) {
	t.Run("WithID", func(t *testing.T) {
		url, err := resource.BaseURL(endpoint, "ContactPerson", "1")
		require.NoError(t, err)
		assert.Equal(t, endpoint+"/contact_people/1", url)
	})

	t.Run("WithoutID", func(t *testing.T) {
		url, err := resource.BaseURL(endpoint, "ContactPerson")
		require.NoError(t, err)
		assert.Equal(t, endpoint+"/contact_people", url)
	})

	t.Run("InvalidClassName", func(t *testing.T) {
		_, err := resource.BaseURL(endpoint, "contact_person", "1")
		assert.True(t, grom.IsNameError(err))
	})
}

func TestAllURL(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		expected string
	}{
		{"NoSegments", nil, endpoint + "/contact_people"},
		{"Segments", []string{"members", "current"}, endpoint + "/contact_people/members/current"},
		{"SingleSegment", []string{"current"}, endpoint + "/contact_people/current"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := resource.AllURL(endpoint, "ContactPerson", tt.segments...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestAssociationURL(t *testing.T) {
	owner := dummyPerson{id: "1"}

	tests := []struct {
		name     string
		opts     resource.Options
		expected string
	}{
		{"Collection", resource.Options{}, endpoint + "/dummy_people/1/parties.ttl"},
		{"Optional", resource.Options{Optional: "current"}, endpoint + "/dummy_people/1/parties/current.ttl"},
		{"Single", resource.Options{Single: true}, endpoint + "/dummy_people/1/party.ttl"},
		{"SingleAndOptional", resource.Options{Single: true, Optional: "current"}, endpoint + "/dummy_people/1/party/current.ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := resource.AssociationURL(endpoint, owner, "Party", tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestAssociationURLOwnerURI(t *testing.T) {
	url, err := resource.AssociationURL(endpoint, dummyPerson{id: "http://id.example.com/1"}, "PartyMembership", resource.Options{})
	require.NoError(t, err)
	assert.Equal(t, endpoint+"/dummy_people/1/party_memberships.ttl", url)
}

func TestAssociationURLInvalidName(t *testing.T) {
	_, err := resource.AssociationURL(endpoint, dummyPerson{id: "1"}, "party", resource.Options{})
	assert.True(t, grom.IsNameError(err))
}

func TestAssociationURLNilOwner(t *testing.T) {
	_, err := resource.AssociationURL(endpoint, nil, "Party", resource.Options{})
	require.Error(t, err)
	assert.True(t, grom.IsMissingDependency(err))

	_, err = resource.NewBuilder(endpoint, nil).Association(nil, "Party", resource.Single())
	assert.True(t, grom.IsMissingDependency(err))
}

func TestNewOptions(t *testing.T) {
	assert.Equal(t, resource.Options{}, resource.NewOptions())
	assert.Equal(t, resource.Options{Single: true, Optional: "current"}, resource.NewOptions(resource.Single(), resource.Optional("current")))
}

func TestBuilder(t *testing.T) {
	b := resource.NewBuilder(endpoint+"/", nil)
	assert.Equal(t, endpoint, b.Endpoint())

	url, err := b.Base("ContactPerson", "1")
	require.NoError(t, err)
	assert.Equal(t, endpoint+"/contact_people/1", url)

	url, err = b.All("ContactPerson", "members", "current")
	require.NoError(t, err)
	assert.Equal(t, endpoint+"/contact_people/members/current", url)

	url, err = b.Association(dummyPerson{id: "1"}, "Party", resource.Optional("current"))
	require.NoError(t, err)
	assert.Equal(t, endpoint+"/dummy_people/1/parties/current.ttl", url)

	url, err = b.Association(dummyPerson{id: "1"}, "Party", resource.Single())
	require.NoError(t, err)
	assert.Equal(t, endpoint+"/dummy_people/1/party.ttl", url)
}

func TestBuilderInflector(t *testing.T) {
	b := resource.NewBuilder(endpoint, naming.NewInflector(map[string]string{"goose": "geese"}))

	url, err := b.Base("CanadaGoose", "7")
	require.NoError(t, err)
	assert.Equal(t, endpoint+"/canada_geese/7", url)
}
