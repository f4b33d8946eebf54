package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeQR(t *testing.T) {
	png, err := EmployeeQR("EMP001")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG signature
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestEmployeeQREmptyID(t *testing.T) {
	_, err := EmployeeQR("")
	assert.Error(t, err)
}
