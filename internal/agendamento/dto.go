package agendamento

import "encoding/json"

// MedicaoPatch é o corpo de uma atualização parcial. Campos nulos são
// ignorados; os presentes são convertidos para as colunas snake_case
// correspondentes na fronteira com o banco.
type MedicaoPatch struct {
	OrderNumber    *string   `json:"orderNumber"`
	Date           *string   `json:"date"`
	RequesterName  *string   `json:"requesterName"`
	Status         *Status   `json:"status"`
	ClientName     *string   `json:"clientName"`
	ClientPhone    *string   `json:"clientPhone"`
	Address        *Endereco `json:"address"`
	Observations   *string   `json:"observations"`
	OrderValue     *float64  `json:"orderValue"`
	CommissionRate *float64  `json:"commissionRate"`
	CommissionPaid *bool     `json:"commissionPaid"`
}

// Colunas monta o mapa de atualização com o nome de cada coluna:
// orderNumber↔order_number, clientName↔client_name, clientPhone↔client_phone,
// orderValue↔order_value, commissionRate↔commission_rate,
// commissionPaid↔commission_paid, requesterName↔requester_name;
// os demais campos passam sem tradução.
func (p MedicaoPatch) Colunas() map[string]interface{} {
	c := map[string]interface{}{}
	if p.OrderNumber != nil {
		c["order_number"] = *p.OrderNumber
	}
	if p.Date != nil {
		c["date"] = *p.Date
	}
	if p.RequesterName != nil {
		c["requester_name"] = *p.RequesterName
	}
	if p.Status != nil {
		c["status"] = *p.Status
	}
	if p.ClientName != nil {
		c["client_name"] = *p.ClientName
	}
	if p.ClientPhone != nil {
		c["client_phone"] = *p.ClientPhone
	}
	if p.Address != nil {
		// string, não []byte: bytes virariam bytea na inferência do driver
		if b, err := json.Marshal(p.Address); err == nil {
			c["address"] = string(b)
		}
	}
	if p.Observations != nil {
		c["observations"] = *p.Observations
	}
	if p.OrderValue != nil {
		c["order_value"] = *p.OrderValue
	}
	if p.CommissionRate != nil {
		c["commission_rate"] = *p.CommissionRate
	}
	if p.CommissionPaid != nil {
		c["commission_paid"] = *p.CommissionPaid
	}
	return c
}
