package badge

import (
	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const imageSize = 256

// EmployeeQR encodes an employee identifier as a QR PNG for printed badges.
// Scanning it at the attendance terminal fills in the employee_id field.
func EmployeeQR(employeeID string) ([]byte, error) {
	if employeeID == "" {
		return nil, errors.New("empty employee id")
	}

	png, err := qrcode.Encode(employeeID, qrcode.Medium, imageSize)
	if err != nil {
		return nil, errors.Wrap(err, "encoding employee qr")
	}

	return png, nil
}
