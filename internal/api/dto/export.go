package dto

// ExportResponse is a generated download: the suggested filename and the
// complete artifact bytes. Nothing is streamed; an export either produces
// the whole artifact or fails.
type ExportResponse struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}
