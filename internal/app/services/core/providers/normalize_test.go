package providers

import (
	"medidata-service/internal/app/models"
	"medidata-service/internal/pkg/constvars"
	"medidata-service/internal/pkg/npi_dto"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRegistryRecord_IndividualRecord(t *testing.T) {
	record := &npi_dto.Record{
		Number:          json.Number("1234567890"),
		EnumerationType: constvars.EnumerationTypeIndividual,
		Basic: &npi_dto.Basic{
			FirstName:  "Jane",
			MiddleName: "Q",
			LastName:   "Doe",
			Credential: "MD",
		},
		Taxonomies: []npi_dto.Taxonomy{
			{Desc: "Internal Medicine", Primary: false},
			{Desc: "Cardiology", Primary: true},
		},
		Addresses: []npi_dto.Address{
			{AddressPurpose: "MAILING", City: "Springfield", State: "IL", PostalCode: "62704"},
			{AddressPurpose: constvars.AddressPurposeLocation, City: "Chicago", State: "IL", PostalCode: "60601", TelephoneNumber: "312-555-0100"},
		},
		Endpoints: []npi_dto.Endpoint{
			{EndpointType: "CONNECT", Endpoint: "https://portal.example.com"},
			{EndpointType: "EMAIL", Endpoint: "jane.doe@example.com"},
		},
	}

	provider := NormalizeRegistryRecord(record)
	require.NotNil(t, provider)

	assert.Equal(t, "1234567890", provider.ID)
	assert.Equal(t, "1234567890", provider.NPINumber)
	assert.Equal(t, "Jane Q Doe, MD", provider.Name)
	assert.Equal(t, "Cardiology", provider.Specialty, "primary taxonomy wins over first")
	assert.Equal(t, "Chicago, IL, 60601", provider.Location, "LOCATION address wins over mailing")
	assert.Equal(t, "312-555-0100", provider.Phone)
	assert.Equal(t, "jane.doe@example.com", provider.Email)
	assert.Equal(t, constvars.EnumerationTypeIndividual, provider.EnumerationType)
	assert.False(t, provider.IsAffiliated)
	assert.Equal(t, 0, provider.Rating)
	assert.Empty(t, provider.Insurance)
}

func TestNormalizeRegistryRecord_OrganizationRecord(t *testing.T) {
	record := &npi_dto.Record{
		Number: json.Number("1098765432"),
		Basic: &npi_dto.Basic{
			OrganizationName: "Mercy General Hospital",
		},
	}

	provider := NormalizeRegistryRecord(record)
	require.NotNil(t, provider)

	assert.Equal(t, "Mercy General Hospital", provider.Name)
	assert.Equal(t, constvars.EnumerationTypeOrganization, provider.EnumerationType)
	assert.Equal(t, constvars.SentinelSpecialtyMissing, provider.Specialty)
	assert.Equal(t, constvars.SentinelLocationNotAvailable, provider.Location)
}

func TestNormalizeRegistryRecord_ExplicitTypeWinsOverFields(t *testing.T) {
	record := &npi_dto.Record{
		Number:          json.Number("1222333444"),
		EnumerationType: constvars.EnumerationTypeOrganization,
		Basic: &npi_dto.Basic{
			FirstName:        "Stray",
			LastName:         "Fields",
			OrganizationName: "Lakeside Clinic",
		},
	}

	provider := NormalizeRegistryRecord(record)
	require.NotNil(t, provider)
	assert.Equal(t, "Lakeside Clinic", provider.Name)
	assert.Equal(t, constvars.EnumerationTypeOrganization, provider.EnumerationType)
}

func TestNormalizeRegistryRecord_SkipsUnusableRecords(t *testing.T) {
	assert.Nil(t, NormalizeRegistryRecord(nil))

	assert.Nil(t, NormalizeRegistryRecord(&npi_dto.Record{
		Basic: &npi_dto.Basic{FirstName: "No", LastName: "Number"},
	}), "record without a number is unusable")

	assert.Nil(t, NormalizeRegistryRecord(&npi_dto.Record{
		Number: json.Number("1234567890"),
	}), "record without a basic block is unusable")

	assert.Nil(t, NormalizeRegistryRecord(&npi_dto.Record{
		Number: json.Number("1234567890"),
		Basic:  &npi_dto.Basic{Credential: "MD"},
	}), "record with no derivable name is unusable")
}

func TestNormalizeRegistryRecord_EmailEndpointSelection(t *testing.T) {
	t.Run("direct messaging endpoint is not email", func(t *testing.T) {
		record := &npi_dto.Record{
			Number: json.Number("1444555666"),
			Basic:  &npi_dto.Basic{FirstName: "Dana", LastName: "Smith"},
			Endpoints: []npi_dto.Endpoint{
				{EndpointType: "DIRECT", EndpointDescription: "Direct Messaging Address", Endpoint: "dana.smith@direct.example.org"},
			},
		}

		provider := NormalizeRegistryRecord(record)
		require.NotNil(t, provider)
		assert.Empty(t, provider.Email, "address-shaped direct endpoints stay out of the email field")
	})

	t.Run("email label in the description is enough", func(t *testing.T) {
		record := &npi_dto.Record{
			Number: json.Number("1444555666"),
			Basic:  &npi_dto.Basic{FirstName: "Dana", LastName: "Smith"},
			Endpoints: []npi_dto.Endpoint{
				{EndpointType: "DIRECT", Endpoint: "dana.smith@direct.example.org"},
				{EndpointDescription: "Email Address", Endpoint: "office@example.com"},
			},
		}

		provider := NormalizeRegistryRecord(record)
		require.NotNil(t, provider)
		assert.Equal(t, "office@example.com", provider.Email)
	})
}

func TestNormalizeRegistryRecord_NoCredentialSuffixWithoutName(t *testing.T) {
	record := &npi_dto.Record{
		Number: json.Number("1333444555"),
		Basic: &npi_dto.Basic{
			FirstName: "Alex",
			LastName:  "Rivera",
		},
	}

	provider := NormalizeRegistryRecord(record)
	require.NotNil(t, provider)
	assert.Equal(t, "Alex Rivera", provider.Name)
}

func TestNormalizeDirectoryRow_FullRow(t *testing.T) {
	row := &models.Provider{
		ProviderID: "prov-1",
		FirstName:  "Sam",
		LastName:   "Lee",
		City:       "Austin",
		State:      "TX",
		Taxonomy:   "Dermatology",
		Insurance:  "Blue Cross",
		Email:      "sam@example.com",
		PhoneNum:   "512-555-0199",
	}

	provider := NormalizeDirectoryRow(row)

	assert.Equal(t, "prov-1", provider.ID)
	assert.Equal(t, "Sam Lee", provider.Name)
	assert.Equal(t, "Dermatology", provider.Specialty)
	assert.Equal(t, "Austin, TX", provider.Location)
	assert.Equal(t, []string{"Blue Cross"}, provider.Insurance)
	assert.Equal(t, constvars.EnumerationTypeIndividual, provider.EnumerationType)
	assert.True(t, provider.IsAffiliated)
	assert.Empty(t, provider.NPINumber)
}

func TestNormalizeDirectoryRow_SentinelsAndOrganizationType(t *testing.T) {
	provider := NormalizeDirectoryRow(&models.Provider{
		ProviderID:   "prov-2",
		ProviderType: "organization",
	})

	assert.Equal(t, constvars.SentinelUnknownProvider, provider.Name)
	assert.Equal(t, constvars.SentinelSpecialtyMissing, provider.Specialty)
	assert.Equal(t, constvars.SentinelLocationNotAvailable, provider.Location)
	assert.Empty(t, provider.Insurance)
	assert.Equal(t, constvars.EnumerationTypeOrganization, provider.EnumerationType)
}
