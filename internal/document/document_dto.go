package document

import "io"

const (
	DocTypeOfferLetter = "offer_letter"
	DocTypeSalarySlip  = "salary_slip"
)

type SaveDocumentsRequest struct {
	OfferLetterURL *string `json:"offerLetterUrl"`
	SalarySlipURL  *string `json:"salarySlipUrl"`
}

type DocumentEntry struct {
	DocType  string `json:"doc_type"`
	FilePath string `json:"file_path"`
}

type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
