package interfaces

//go:generate mockgen -source=qr_generator_interface.go -destination=mocks/qr_generator_mock.go -package=mock_interfaces

// IQRGenerator renders content as a PNG QR code.
type IQRGenerator interface {
	Generate(content string) ([]byte, error)
}
