package paystack

// Relative gateway paths. None of them carries a leading slash; the client
// joins them onto the configured base URL.
const (
	PathTransaction           = "transaction"
	PathTransactionInitialize = "transaction/initialize"
	PathTransactionVerify     = "transaction/verify"
	PathTransactionExport     = "transaction/export"
	PathSubscription          = "subscription"
	PathSubscriptionEnable    = "subscription/enable"
	PathSubscriptionDisable   = "subscription/disable"
	PathPage                  = "page"
	PathSubAccount            = "subaccount"
	PathBank                  = "bank"
	PathBankResolve           = "bank/resolve"
	PathPlan                  = "plan"
	PathCustomer              = "customer"
	PathTransfer              = "transfer"
	PathTransferRecipient     = "transferrecipient"
	PathTransferFinalize      = "transfer/finalize_transfer"
	PathTransferVerify        = "transfer/verify"
)

// DefaultBaseURL is the public gateway API host.
const DefaultBaseURL = "https://api.paystack.co"
