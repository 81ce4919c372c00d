package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/queries"
)

func TestNewGetAllCouriersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllCouriersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllCouriersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllCouriersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllCouriersQueryIsNotConstructed)
}

func TestNewGetUncompletedOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetUncompletedOrdersQuery()
	require.NoError(t, query.Validate())
}

func TestGetUncompletedOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUncompletedOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUncompletedOrdersQueryIsNotConstructed)
}
