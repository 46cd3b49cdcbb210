package typesignal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/typesignal/pkg/typesignal"
)

type Invoice struct {
	typesignal.Emitter
}

type CreditNote struct {
	Invoice
}

func TestDefaultHub(t *testing.T) {
	invoiceType := typesignal.TypeOf[Invoice]()
	creditType := typesignal.TypeOf[CreditNote]()
	c := &collector{}
	base := &collector{}

	_, err := typesignal.Events(invoiceType)
	assert.ErrorIs(t, err, typesignal.ErrNoNamespace)

	_, err = typesignal.Declare(invoiceType, typesignal.Cascading("issued"))
	require.NoError(t, err)
	_, err = typesignal.DeclareNames(invoiceType, "voided")
	require.NoError(t, err)
	require.NoError(t, typesignal.Register(creditType))

	_, err = typesignal.ConnectTransitive("issued", c.handle, invoiceType)
	require.NoError(t, err)
	_, err = typesignal.Connect("issued", base.handle)
	require.NoError(t, err)
	_, err = typesignal.Connect("voided", c.handle, creditType)
	require.NoError(t, err)

	require.NoError(t, typesignal.Emit(&CreditNote{}, typesignal.Signal("issued")))
	require.NoError(t, typesignal.EmitType(creditType, typesignal.Signal("voided")))

	assert.Equal(t, []string{"issued", "voided"}, c.names())
	assert.Equal(t, 1, base.count())

	table, err := typesignal.Events(creditType)
	require.NoError(t, err)
	assert.Equal(t, []string{"issued", "voided"}, table.Names())
}
