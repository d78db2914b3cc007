package interfaces

import (
	"errors"
	"io"
	"rotaclick/internal/domain/entities"
)

var (
	ErrUnsupportedSheetFormat = errors.New("unsupported spreadsheet format")
	ErrMissingSheetColumns    = errors.New("spreadsheet is missing required columns")
)

// IRateSheetReader turns an uploaded rate table (xlsx or csv) into raw rows.
type IRateSheetReader interface {
	Read(filename string, r io.Reader) ([]entities.RateSheetRow, error)
}
