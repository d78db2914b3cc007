package interfaces

import (
	"context"
	"errors"
	"rotaclick/internal/domain/entities"
)

var ErrTaxIDNotFound = errors.New("tax id not found")

// ITaxIDValidator looks a CNPJ up in the federal registry.
type ITaxIDValidator interface {
	Lookup(ctx context.Context, cnpj string) (entities.TaxIDRecord, error)
}
