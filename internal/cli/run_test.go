package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"invoicesim/internal/catalog"
)

func TestCreateBusinesses_FromFlags(t *testing.T) {
	t.Parallel()

	prompter := NewPrompter(strings.NewReader(""), &strings.Builder{})

	businesses, interactive, err := createBusinesses(catalog.Builtin(), runFlags{
		businesses: 3,
		profiles:   []string{"A3", "F1"},
	}, prompter)
	require.NoError(t, err)
	require.False(t, interactive)
	require.Len(t, businesses, 3)

	require.Equal(t, "Business 1", businesses[0].Name)
	require.Equal(t, int64(2), businesses[1].ID)

	// profile codes cycle across the population: A3, F1, A3
	require.Equal(t, 365, businesses[0].Profile.InvoicesPerYear)
	require.Equal(t, 91, businesses[1].Profile.InvoicesPerYear)
	require.Equal(t, 50.0, businesses[1].Profile.OnTimePaymentPercentage)
	require.Equal(t, 365, businesses[2].Profile.InvoicesPerYear)

	// profiles from the catalog are never shared between businesses
	businesses[0].Profile.SetCustomerAverage(2, 1000)
	require.Empty(t, businesses[2].Profile.CustomerAverages)
}

func TestCreateBusinesses_RejectsUnknownProfileFlag(t *testing.T) {
	t.Parallel()

	prompter := NewPrompter(strings.NewReader(""), &strings.Builder{})

	_, _, err := createBusinesses(catalog.Builtin(), runFlags{
		businesses: 2,
		profiles:   []string{"Q9"},
	}, prompter)
	require.Error(t, err)
	require.Contains(t, err.Error(), "Q9")
}

func TestCreateBusinesses_Interactive(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	// count: garbage then 2; then a bad code, then two valid codes
	prompter := NewPrompter(strings.NewReader("zero\n2\nXX\na1\nB2\n"), &out)

	businesses, interactive, err := createBusinesses(catalog.Builtin(), runFlags{}, prompter)
	require.NoError(t, err)
	require.True(t, interactive)
	require.Len(t, businesses, 2)

	require.Equal(t, 91, businesses[0].Profile.InvoicesPerYear)
	require.Equal(t, 100.0, businesses[0].Profile.OnTimePaymentPercentage)
	require.Equal(t, 123, businesses[1].Profile.InvoicesPerYear)
	require.Equal(t, 10, businesses[1].Profile.MaxPaymentDelay)

	require.Contains(t, out.String(), "Enter the number of businesses to create:")
	require.Contains(t, out.String(), "Select attributes for Business #1")
	require.Contains(t, out.String(), "Invalid choice")
}
