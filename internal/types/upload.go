package types

// UploadResult describes an inlined upload. DataURL carries the whole
// file as a base64 data URL, so nothing touches disk.
type UploadResult struct {
	Success  bool   `json:"success"`
	Filename string `json:"filename"`
	DataURL  string `json:"data_url"`
	Size     int    `json:"size"`
	// Type is "image" or "document" depending on the extension.
	Type string `json:"type"`
}
