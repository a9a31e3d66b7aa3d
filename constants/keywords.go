package constants

// Keyword tables used by the field and sequence extractors. Matching is
// case-insensitive substring; lists are ordered by priority (first hit wins).

var AccountIDKeywords = []string{
	"account number",
	"account no",
	"account #",
	"loan number",
	"loan id",
	"acct",
}

var InterestRateKeywords = []string{
	"interest rate",
	"current rate",
	"rate:",
	"apr",
}

var BalanceKeywords = []string{
	"current balance",
	"outstanding balance",
	"principal balance",
	"total balance",
	"current principal",
	"amount owed",
	"payoff amount",
	"balance:",
}

var StartDateKeywords = []string{
	"disbursement date",
	"origination date",
	"loan date",
	"first disbursement",
	"date of loan",
	"start date",
	"opened",
}

var EndDateKeywords = []string{
	"maturity date",
	"payoff date",
	"final payment date",
	"end date",
	"expected payoff",
}

var PrincipalKeywords = []string{
	"original principal",
	"original loan amount",
	"amount borrowed",
	"original balance",
	"disbursed amount",
}

var PaymentSectionKeywords = []string{
	"payment history",
	"payment activity",
	"transaction history",
	"recent payments",
	"payments received",
}

var BalanceSectionKeywords = []string{
	"loan details",
	"account details",
	"account summary",
	"loan summary",
}

var NonPaymentKeywords = []string{
	"forbearance",
	"deferment",
}
