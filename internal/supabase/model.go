package supabase

import "fmt"

// ResumeMetadata is the subset of a resumes row needed for analysis.
type ResumeMetadata struct {
	FilePath      string `json:"file_path"`
	FileName      string `json:"file_name"`
	FileSizeBytes int64  `json:"file_size_bytes"`
	UploadDate    string `json:"upload_date"`
}

// FormattedSize renders the file size in kilobytes with two decimals.
func (m ResumeMetadata) FormattedSize() string {
	return fmt.Sprintf("%.2f KB", float64(m.FileSizeBytes)/1024.0)
}
