package payment

import "paystack-client/pkg/paystack"

type CreateRecipientRequest struct {
	Type              string                 `json:"type" binding:"required,oneof=nuban mobile_money basa authorization ghipss"`
	Name              string                 `json:"name" binding:"required"`
	AccountNumber     string                 `json:"account_number" binding:"required"`
	BankCode          string                 `json:"bank_code" binding:"required"`
	Description       string                 `json:"description"`
	Currency          string                 `json:"currency"`
	AuthorizationCode string                 `json:"authorization_code"`
	Metadata          map[string]interface{} `json:"metadata"`
}

func (r CreateRecipientRequest) Payload() paystack.Payload {
	p := paystack.Payload{
		"type":           r.Type,
		"name":           r.Name,
		"account_number": r.AccountNumber,
		"bank_code":      r.BankCode,
	}
	setIf(p, "description", r.Description)
	setIf(p, "currency", r.Currency)
	setIf(p, "authorization_code", r.AuthorizationCode)
	if len(r.Metadata) > 0 {
		p["metadata"] = r.Metadata
	}
	return p
}

type MakeTransferRequest struct {
	Source    string `json:"source" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Recipient string `json:"recipient" binding:"required"`
	Currency  string `json:"currency"`
	Reference string `json:"reference"`
}

func (r MakeTransferRequest) Payload() paystack.Payload {
	p := paystack.Payload{
		"source":    r.Source,
		"reason":    r.Reason,
		"amount":    r.Amount,
		"recipient": r.Recipient,
	}
	setIf(p, "currency", r.Currency)
	setIf(p, "reference", r.Reference)
	return p
}

type FinalizeTransferRequest struct {
	TransferCode string `json:"transfer_code" binding:"required"`
	OTP          string `json:"otp" binding:"required"`
}

func (r FinalizeTransferRequest) Payload() paystack.Payload {
	return paystack.Payload{"transfer_code": r.TransferCode, "otp": r.OTP}
}

type ReferenceResponse struct {
	Reference string `json:"reference"`
	PublicKey string `json:"public_key,omitempty"`
}

func setIf(p paystack.Payload, key, value string) {
	if value != "" {
		p[key] = value
	}
}
