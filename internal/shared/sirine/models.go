package sirine

// Payload is the unparsed response body from the SIRINE API. The
// upstream field names are Indonesian abbreviations; ParseResponse
// maps them into a Specification.
type Payload map[string]interface{}

// Specification is the normalized view of a SIRINE record. Missing
// source fields default to zero values; Raw keeps the original payload
// for traceability.
type Specification struct {
	PONumber       int64   `json:"po_number"`
	OBCNumber      string  `json:"obc_number"`
	ProductType    string  `json:"product_type"`
	OrderDate      string  `json:"order_date"`
	DueDate        string  `json:"due_date"`
	TotalOrder     int     `json:"total_order"`
	TotalSheets    int     `json:"total_sheets"`
	Machine        string  `json:"machine"`
	DesignYear     string  `json:"design_year"`
	Status         string  `json:"status"`
	PrintCount     int     `json:"print_count"`
	VerifiedGood   int     `json:"verified_good"`
	VerifiedDefect int     `json:"verified_defect"`
	Packed         int     `json:"packed"`
	Shipped        int     `json:"shipped"`
	Raw            Payload `json:"raw"`
}

// ParseResponse normalizes a raw SIRINE payload. Upstream is loose
// about types (numbers arrive as JSON numbers or strings depending on
// the endpoint), so every field is extracted tolerantly.
func ParseResponse(raw Payload) *Specification {
	return &Specification{
		PONumber:       int64Field(raw, "no_po"),
		OBCNumber:      strField(raw, "no_obc"),
		ProductType:    strField(raw, "jenis"),
		OrderDate:      strField(raw, "tgl_obc"),
		DueDate:        strField(raw, "tgl_jt"),
		TotalOrder:     intField(raw, "jml_order"),
		TotalSheets:    intField(raw, "rencet"),
		Machine:        strField(raw, "mesin"),
		DesignYear:     strField(raw, "desain"),
		Status:         strField(raw, "status"),
		PrintCount:     intField(raw, "jml_cetak"),
		VerifiedGood:   intField(raw, "hcs_verif"),
		VerifiedDefect: intField(raw, "hcts_verif"),
		Packed:         intField(raw, "kemas"),
		Shipped:        intField(raw, "kirim"),
		Raw:            raw,
	}
}
