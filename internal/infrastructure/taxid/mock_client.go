package taxid

import (
	"context"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"
)

// MockClient answers every lookup with an active road freight company.
// Used in local development when TAXID_MOCK is set.
type MockClient struct{}

var _ interfaces.ITaxIDValidator = MockClient{}

func (MockClient) Lookup(_ context.Context, cnpj string) (entities.TaxIDRecord, error) {
	return entities.TaxIDRecord{
		CNPJ:        cnpj,
		CompanyName: "Transportadora Exemplo LTDA",
		TradeName:   "Exemplo Cargas",
		Active:      true,
		MainCNAE:    "4930202",
		Address:     "Avenida Paulista, 1000",
		City:        "SAO PAULO",
		State:       "SP",
		Zip:         "01310100",
	}, nil
}
