package taxid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrRegistryUnavailable = errors.New("cnpj registry unavailable")

const activeStatus = "ATIVA"

type brasilAPIResponse struct {
	CNPJ              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia"`
	SituacaoCadastral string `json:"descricao_situacao_cadastral"`
	CNAEFiscal        int    `json:"cnae_fiscal"`
	CNAEsSecundarios  []struct {
		Codigo int `json:"codigo"`
	} `json:"cnaes_secundarios"`
	Logradouro string `json:"logradouro"`
	Numero     string `json:"numero"`
	Municipio  string `json:"municipio"`
	UF         string `json:"uf"`
	CEP        string `json:"cep"`
}

// BrasilAPIClient queries the public BrasilAPI mirror of the Receita
// Federal CNPJ registry.
type BrasilAPIClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

var _ interfaces.ITaxIDValidator = (*BrasilAPIClient)(nil)

func NewBrasilAPIClient(baseURL string, timeout time.Duration, logger *zap.Logger) *BrasilAPIClient {
	return &BrasilAPIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *BrasilAPIClient) Lookup(ctx context.Context, cnpj string) (entities.TaxIDRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+cnpj, nil)
	if err != nil {
		return entities.TaxIDRecord{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("[taxid][client] request failed", zap.String("cnpj", cnpj), zap.Error(err))
		return entities.TaxIDRecord{}, fmt.Errorf("%w: %v", ErrRegistryUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return entities.TaxIDRecord{}, interfaces.ErrTaxIDNotFound
	case resp.StatusCode != http.StatusOK:
		c.logger.Warn("[taxid][client] unexpected status", zap.String("cnpj", cnpj), zap.Int("status", resp.StatusCode))
		return entities.TaxIDRecord{}, fmt.Errorf("%w: status %d", ErrRegistryUnavailable, resp.StatusCode)
	}

	var body brasilAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entities.TaxIDRecord{}, fmt.Errorf("%w: decode: %v", ErrRegistryUnavailable, err)
	}
	c.logger.Info("[taxid][client] lookup ok", zap.String("cnpj", cnpj), zap.String("status", body.SituacaoCadastral))

	return body.toRecord(cnpj), nil
}

func (b brasilAPIResponse) toRecord(cnpj string) entities.TaxIDRecord {
	rec := entities.TaxIDRecord{
		CNPJ:        cnpj,
		CompanyName: strings.TrimSpace(b.RazaoSocial),
		TradeName:   strings.TrimSpace(b.NomeFantasia),
		Active:      strings.EqualFold(strings.TrimSpace(b.SituacaoCadastral), activeStatus),
		City:        strings.TrimSpace(b.Municipio),
		State:       strings.TrimSpace(b.UF),
		Zip:         strings.TrimSpace(b.CEP),
	}
	if b.CNAEFiscal != 0 {
		rec.MainCNAE = strconv.Itoa(b.CNAEFiscal)
	}
	for _, s := range b.CNAEsSecundarios {
		if s.Codigo != 0 {
			rec.SecondaryCNAEs = append(rec.SecondaryCNAEs, strconv.Itoa(s.Codigo))
		}
	}
	street := strings.TrimSpace(b.Logradouro)
	if n := strings.TrimSpace(b.Numero); street != "" && n != "" {
		street += ", " + n
	}
	rec.Address = street
	return rec
}
