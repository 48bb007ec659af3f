package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"
)

// Notificador envia alertas por webhook quando uma comissão é paga.
// Sem COMISSAO_WEBHOOK_URL configurada, vira um no-op.
type Notificador struct {
	URL     string
	Cliente *http.Client
}

func NewNotificador() *Notificador {
	return &Notificador{
		URL:     os.Getenv("COMISSAO_WEBHOOK_URL"),
		Cliente: &http.Client{Timeout: 10 * time.Second},
	}
}

// AlertaComissaoPaga dispara o aviso de pagamento. Fire-and-forget:
// falhas são apenas logadas, nunca propagadas ao fluxo de edição.
func (n *Notificador) AlertaComissaoPaga(medicaoID, cliente string, valorComissao float64) {
	if n.URL == "" {
		return
	}
	payload := map[string]interface{}{
		"mensagem":      "Comissão marcada como paga",
		"medicaoId":     medicaoID,
		"cliente":       cliente,
		"valorComissao": valorComissao,
	}
	body, _ := json.Marshal(payload)

	resp, err := n.Cliente.Post(n.URL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
