package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestReminderMessageWithoutDocumentOrSettlement(t *testing.T) {
	msg := ReminderMessage("Maria Souza", "", decimal.RequireFromString("350.00"), "2026-03-10", "")

	assert.Contains(t, msg, "Prezado(a) *Maria Souza*,")
	assert.Contains(t, msg, "vencimento em *10/03/2026*")
	assert.Contains(t, msg, "no valor de *R$ 350,00*")
	assert.Contains(t, msg, "Caso o pagamento já tenha sido realizado, por favor, desconsidere esta notificação.")
	assert.NotContains(t, msg, "CPF")
}

func TestReminderMessageWithDocument(t *testing.T) {
	msg := ReminderMessage("João Silva", "123.456.789-00", decimal.RequireFromString("1250.40"), "2026-05-05", "")

	assert.Contains(t, msg, "Prezado(a) *João Silva* (CPF: 123.456.789-00),")
	assert.Contains(t, msg, "no valor de *R$ 1.250,40*")
}

func TestReminderMessageWithSettlementDate(t *testing.T) {
	msg := ReminderMessage("Maria Souza", "", decimal.RequireFromString("350.00"), "2026-03-10", "2026-03-08")

	assert.Contains(t, msg, "realizado em 08/03/2026, por favor, desconsidere")
	assert.NotContains(t, msg, "realizado, por favor")
}
