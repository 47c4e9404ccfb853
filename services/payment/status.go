package payment

import "pillowstat/models"

// Totals sums completed transactions: inflow is payments plus deposits.
func Totals(txs []models.Transaction) (paid, refunded float64, hasRefund bool) {
	for _, t := range txs {
		if t.Status != models.TransactionCompleted {
			continue
		}
		switch {
		case t.Inflow():
			paid += t.Amount
		case t.Type == models.TransactionRefund:
			refunded += t.Amount
			hasRefund = true
		}
	}
	return paid, refunded, hasRefund
}

// ComputePaymentStatus derives a booking's payment status from its transactions.
// With nothing paid and no refund on record the current status is kept.
func ComputePaymentStatus(total float64, txs []models.Transaction, current models.PaymentStatus) models.PaymentStatus {
	paid, refunded, hasRefund := Totals(txs)
	net := paid - refunded
	switch {
	case net > 0 && net >= total:
		return models.PaymentPaid
	case net > 0:
		return models.PaymentPartial
	case hasRefund:
		return models.PaymentRefunded
	case current == "":
		return models.PaymentPending
	default:
		return current
	}
}
