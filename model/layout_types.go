package model

// CustomerLayout is the declarative flat-file layout for one customer type,
// as loaded from the customer configuration document.
//
// CSVStructure is the ordered token list for the HDR row. Tokens with fixed
// meanings: HDR, orderNumber, date, code, type, companyName, phone. Any
// other token is resolved against the Address map by name.
type CustomerLayout struct {
	CSVStructure []string          `json:"csvStructure"`
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	HeaderCode   string            `json:"headerCode,omitempty"`
	Type         string            `json:"type,omitempty"`
	Address      map[string]string `json:"address"`
}
