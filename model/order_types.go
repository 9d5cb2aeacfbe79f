package model

// NotFoundDescription is the sentinel description for lines whose ISBN has
// no catalog match. Available must be false exactly when this is set.
const NotFoundDescription = "Not Found"

// OrderLine is one reconciled row of an uploaded order file.
type OrderLine struct {
	// LineNumber is the 3-digit zero-padded 1-based position of the line.
	// It is recomputed after every structural mutation of the batch.
	LineNumber  string `json:"lineNumber"`
	OrderRef    string `json:"orderRef"`
	ISBN        string `json:"isbn"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Available   bool   `json:"available"`
	SetupDate   string `json:"setupDate"`
}

// OrderBatch is the full in-memory order for one upload session: the
// reconciled lines plus the operator-entered metadata. It is replaced
// wholesale on each successful upload and lost when the process exits.
type OrderBatch struct {
	ID           string      `json:"batchId"`
	OrderRef     string      `json:"orderRef"`
	CustomerType string      `json:"customerType"`
	Lines        []OrderLine `json:"lines"`
}
