package comissao

import (
	"errors"
	"fmt"

	"github.com/agendadomedidor/api-medidor/internal/numerico"
)

// Campo editável de um item de comissão.
type Campo string

const (
	CampoValorPedido  Campo = "orderValue"
	CampoTaxaComissao Campo = "commissionRate"
	CampoNumeroPedido Campo = "orderNumber"
	CampoNomeCliente  Campo = "clientName"
)

var (
	ErrItemNaoEncontrado  = errors.New("item de comissão não encontrado")
	ErrCampoInvalido      = errors.New("campo de edição inválido")
	ErrPagamentoSemPedido = errors.New("informe o valor do pedido antes de alterar o status para pago")
)

// AplicarEdicao troca um campo do item identificado e recalcula o valor da
// comissão a partir dos textos atuais dos dois campos numéricos. Devolve a
// coleção nova (a original não é alterada) e o único item modificado, que é
// o que segue para o patch de persistência.
func AplicarEdicao(itens []ItemComissao, id string, campo Campo, valor string) ([]ItemComissao, *ItemComissao, error) {
	var alterado *ItemComissao
	out := make([]ItemComissao, len(itens))
	for i, item := range itens {
		if item.ID != id {
			out[i] = item
			continue
		}
		switch campo {
		case CampoValorPedido:
			item.OrderValue = numerico.SanearValor(valor)
		case CampoTaxaComissao:
			item.CommissionRate = numerico.SanearTaxa(valor)
		case CampoNumeroPedido:
			item.OrderNumber = valor
		case CampoNomeCliente:
			item.ClientName = valor
		default:
			return nil, nil, fmt.Errorf("%w: %q", ErrCampoInvalido, campo)
		}
		item.CommissionValue = numerico.ParseNumero(item.OrderValue) *
			(numerico.ParseNumero(item.CommissionRate) / 100)
		out[i] = item
		alterado = &out[i]
	}
	if alterado == nil {
		return nil, nil, ErrItemNaoEncontrado
	}
	return out, alterado, nil
}

// DefinirPagamento marca ou desmarca a comissão como paga. Marcar como paga
// exige valor de pedido maior que zero; a recusa não altera o item.
func DefinirPagamento(item ItemComissao, pago bool) (ItemComissao, error) {
	if pago && numerico.ParseNumero(item.OrderValue) <= 0 {
		return item, ErrPagamentoSemPedido
	}
	item.CommissionPaid = pago
	return item, nil
}

// RemoverDados limpa os dados de comissão do item sem excluir a medição:
// o patch resultante anula valor e taxa no banco.
func RemoverDados(item ItemComissao) ItemComissao {
	item.OrderValue = ""
	item.CommissionRate = ""
	item.CommissionValue = 0
	item.CommissionPaid = false
	return item
}

// Patch monta a escrita mínima enviada ao banco para um único item.
// Textos vazios ou inválidos viram NULL, nunca zero.
func Patch(item ItemComissao) map[string]interface{} {
	return map[string]interface{}{
		"order_value":     parseOuNulo(item.OrderValue),
		"commission_rate": parseOuNulo(item.CommissionRate),
		"order_number":    item.OrderNumber,
		"client_name":     item.ClientName,
		"commission_paid": item.CommissionPaid,
	}
}

func parseOuNulo(s string) interface{} {
	if v := numerico.ParseNumeroPtr(s); v != nil {
		return *v
	}
	return nil
}
