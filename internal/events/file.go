package events

import "time"

// FileEventType represents attachment-specific event types.
type FileEventType string

// File event type constants.
const (
	FileEventUploaded FileEventType = "uploaded"
	FileEventDeleted  FileEventType = "deleted"
)

// FileEvent announces that the set of uploaded attachments changed.
// Subscribers refresh their own file listing.
type FileEvent struct {
	FileID    string
	Filename  string
	Type      FileEventType
	Timestamp time.Time
}

// NewFileUploadedEvent creates a file uploaded event.
func NewFileUploadedEvent(filename string) FileEvent {
	return FileEvent{
		Filename:  filename,
		Type:      FileEventUploaded,
		Timestamp: time.Now(),
	}
}

// NewFileDeletedEvent creates a file deleted event.
func NewFileDeletedEvent(id string) FileEvent {
	return FileEvent{
		FileID:    id,
		Type:      FileEventDeleted,
		Timestamp: time.Now(),
	}
}
