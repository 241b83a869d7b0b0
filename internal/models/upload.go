package models

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type UploadedFile struct {
	URL          string    `json:"url"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Type         MediaType `json:"type"`
}

type UploadResponse struct {
	Files []UploadedFile `json:"files"`
}
