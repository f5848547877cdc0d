package supabase

import "errors"

var (
	// ErrResumeNotFound indicates no resume row matched the id and owner.
	ErrResumeNotFound = errors.New("resume not found or access denied")

	// ErrMetadataParse indicates the metadata response could not be decoded.
	ErrMetadataParse = errors.New("failed to parse resume metadata")

	// ErrDownloadFailed indicates the storage download did not succeed.
	ErrDownloadFailed = errors.New("failed to download file")
)
