package utils

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReminderMessage builds the collection notice for a pending charge.
// The CPF parenthetical appears only when a document is present. When a
// settlement date is recorded the disregard sentence names it; otherwise
// the generic phrasing is used. Delivery is the caller's concern.
func ReminderMessage(residentName, cpf string, amount decimal.Decimal, dueDate, settlementDate string) string {
	document := ""
	if cpf != "" {
		document = fmt.Sprintf(" (CPF: %s)", cpf)
	}

	disregard := "Caso o pagamento já tenha sido realizado, por favor, desconsidere esta notificação."
	if settlementDate != "" {
		disregard = fmt.Sprintf("Caso o pagamento já tenha sido realizado em %s, por favor, desconsidere esta notificação.", DisplayDate(settlementDate))
	}

	return fmt.Sprintf(`Assunto: Aviso de Pendência - Condomínio

Prezado(a) *%s*%s,

Gostaríamos de lembrar sobre a pendência financeira com vencimento em *%s*, no valor de *%s*.

%s

Atenciosamente,
Administração.`, residentName, document, DisplayDate(dueDate), FormatBRL(amount), disregard)
}
