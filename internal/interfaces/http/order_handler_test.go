package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReceiptFilenameIDLargo(t *testing.T) {
	got := receiptFilename("123e4567-e89b-12d3-a456-426614174000")
	assert.Equal(t, "pedido-123e4567.pdf", got)
}

func TestReceiptFilenameIDCorto(t *testing.T) {
	assert.Equal(t, "pedido-abc.pdf", receiptFilename("abc"))
}

func TestReceiptFilenameIDVacio(t *testing.T) {
	assert.Equal(t, "pedido-.pdf", receiptFilename(""))
}
