package domain

import "time"

// Upload kinds accepted by the assistant.
const (
	KindFile = "file"
	KindLink = "link"
	KindText = "text"
)

// PreviewLimit caps the stored content preview for text uploads.
const PreviewLimit = 120

// Upload is a user-submitted artifact awaiting analysis. Records are
// ephemeral: Redis expires them by TTL, the memory store is swept by
// the janitor.
type Upload struct {
	ID             string    `json:"uploadId"`
	Kind           string    `json:"kind"`
	Name           string    `json:"name"`
	MimeType       string    `json:"mimeType,omitempty"`
	Size           int64     `json:"size,omitempty"`
	SourceURL      string    `json:"sourceUrl,omitempty"`
	RawContent     string    `json:"-"`
	ContentPreview string    `json:"contentPreview,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateUploadRequest is the normalized input for the three upload
// kinds; only the fields for the request's kind are set.
type CreateUploadRequest struct {
	Kind     string
	FileName string
	MimeType string
	Size     int64
	URL      string
	Title    string
	Content  string
}

// ProjectStub is the draft project derived from an upload.
type ProjectStub struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
}

// AnalysisMetadata describes how the stub was derived.
type AnalysisMetadata struct {
	Format                 string   `json:"format"`
	Type                   string   `json:"type"`
	SourceURL              string   `json:"sourceUrl,omitempty"`
	Confidence             float64  `json:"confidence"`
	RecommendedNextActions []string `json:"recommendedNextActions"`
}

// Analysis is the result produced for one upload. Re-analyzing the
// same upload keeps the original analysis id.
type Analysis struct {
	ID        string           `json:"analysisId"`
	UploadID  string           `json:"uploadId"`
	Project   ProjectStub      `json:"project"`
	Metadata  AnalysisMetadata `json:"metadata"`
	CreatedAt time.Time        `json:"createdAt"`
}
