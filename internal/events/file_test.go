package events

import "testing"

func TestFileEvents(t *testing.T) {
	t.Run("uploaded", func(t *testing.T) {
		event := NewFileUploadedEvent("report.csv")
		if event.Filename != "report.csv" || event.Type != FileEventUploaded {
			t.Errorf("unexpected event: %+v", event)
		}
		if event.Timestamp.IsZero() {
			t.Error("timestamp should be set")
		}
	})

	t.Run("deleted", func(t *testing.T) {
		event := NewFileDeletedEvent("f1")
		if event.FileID != "f1" || event.Type != FileEventDeleted {
			t.Errorf("unexpected event: %+v", event)
		}
	})
}

func TestAuthEvents(t *testing.T) {
	in := NewLoggedInEvent("ivan")
	if in.Username != "ivan" || in.Type != AuthEventLoggedIn {
		t.Errorf("unexpected event: %+v", in)
	}

	out := NewLoggedOutEvent()
	if out.Type != AuthEventLoggedOut {
		t.Errorf("unexpected event: %+v", out)
	}
}
