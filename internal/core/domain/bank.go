package domain

// Bank is an entry in the static bank reference list served on /banks.
type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Banks returns the supported banks for bank withdrawals. The list is
// reference data, not configuration.
func Banks() []Bank {
	return []Bank{
		{Code: "01", Name: "KCB Bank"},
		{Code: "02", Name: "Standard Chartered Bank"},
		{Code: "03", Name: "ABSA Bank"},
		{Code: "07", Name: "NCBA Bank"},
		{Code: "11", Name: "Co-operative Bank"},
		{Code: "12", Name: "National Bank of Kenya"},
		{Code: "23", Name: "Consolidated Bank"},
		{Code: "31", Name: "CIB Bank"},
		{Code: "63", Name: "Diamond Trust Bank"},
		{Code: "68", Name: "Equity Bank"},
		{Code: "70", Name: "Family Bank"},
		{Code: "72", Name: "Gulf African Bank"},
	}
}
