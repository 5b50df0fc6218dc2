package output

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/cctv-quotations/internal/domain"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "5900.00", Money(5900))
	assert.Equal(t, "0.10", Money(0.1))
	assert.Equal(t, "1152.00", Money(1152))
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2026, 10, 17, 14, 30, 5, 0, time.FixedZone("IST", 5*3600+1800))
	assert.Equal(t, "quotations-20261017-090005.pdf", ExportFilename(ts))
}

func TestPrinter_Quotation(t *testing.T) {
	var buf bytes.Buffer

	q := &domain.Quotation{ID: "q-1", Product: domain.ProductDVR, Quantity: 2, UnitPrice: 3200, Price: 6400, GST: 1152, Total: 7552}
	require.NoError(t, New(&buf, false).Quotation(q))

	out := buf.String()
	assert.Contains(t, out, "DVR")
	assert.Contains(t, out, "1152.00")
	assert.Contains(t, out, "7552.00")
	assert.NotContains(t, out, "Created", "zero timestamps are omitted")
}

func TestPrinter_EmptyList(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, New(&buf, false).Quotations(nil))
	assert.Contains(t, buf.String(), "No quotations yet.")
}

func TestPrinter_SuccessSilentInJSON(t *testing.T) {
	var buf bytes.Buffer

	New(&buf, true).Success("done %d", 1)
	assert.Empty(t, buf.String())

	New(&buf, false).Success("done %d", 1)
	assert.Contains(t, buf.String(), "done 1")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer

	Error(&buf, errors.New("boom"))
	assert.Contains(t, buf.String(), "boom")
}
