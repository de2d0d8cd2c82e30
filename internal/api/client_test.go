package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func TestClientAuth(t *testing.T) {
	t.Run("login returns token and sends no auth header", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/login" || r.Method != http.MethodPost {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get("Authorization") != "" {
				t.Error("login should not carry an Authorization header")
			}
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decoding login body: %v", err)
			}
			if req.Username != "ivan" || req.Password != "secret" {
				t.Errorf("unexpected credentials: %+v", req)
			}
			json.NewEncoder(w).Encode(map[string]any{"token": "tok-123"})
		}))
		defer srv.Close()

		client := New(srv.URL)
		resp, err := client.Login(context.Background(), "ivan", "secret")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if resp.Token != "tok-123" {
			t.Errorf("expected token 'tok-123', got %q", resp.Token)
		}
	})

	t.Run("invalid credentials surface the server error text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid credentials"})
		}))
		defer srv.Close()

		client := New(srv.URL)
		_, err := client.Login(context.Background(), "ivan", "wrong")
		if err == nil {
			t.Fatal("expected error")
		}
		apiErr, ok := err.(*Error)
		if !ok {
			t.Fatalf("expected *Error, got %T", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %d", apiErr.StatusCode)
		}
		if apiErr.Message != "Invalid credentials" {
			t.Errorf("expected server error text, got %q", apiErr.Message)
		}
	})

	t.Run("non-JSON error body falls back to generic message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("<html>bad gateway</html>"))
		}))
		defer srv.Close()

		client := New(srv.URL)
		_, err := client.ListChats(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		if err.Error() != "request failed with status 502" {
			t.Errorf("unexpected fallback message: %q", err.Error())
		}
	})
}

func TestClientChat(t *testing.T) {
	t.Run("send message carries token and decodes the echo", func(t *testing.T) {
		msgID := uuid.New().String()
		chatID := uuid.New().String()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok-123" {
				t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
			}
			var req SendMessageRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			json.NewEncoder(w).Encode(ChatMessage{
				ID:       msgID,
				ChatID:   chatID,
				Message:  req.Message,
				Response: "ответ",
				Category: req.Category,
			})
		}))
		defer srv.Close()

		client := New(srv.URL)
		client.SetToken("tok-123")

		msg, err := client.SendMessage(context.Background(), SendMessageRequest{
			Message:  "Проверь мою прибыль",
			Category: "financial",
		})
		if err != nil {
			t.Fatalf("SendMessage: %v", err)
		}
		if msg.ID != msgID || msg.ChatID != chatID {
			t.Errorf("unexpected ids: %+v", msg)
		}
		if msg.Response != "ответ" {
			t.Errorf("unexpected response: %q", msg.Response)
		}
	})

	t.Run("history unwraps the messages envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/c1/history" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"messages": []ChatMessage{{ID: "m1"}, {ID: "m2"}},
			})
		}))
		defer srv.Close()

		client := New(srv.URL)
		msgs, err := client.GetHistory(context.Background(), "c1")
		if err != nil {
			t.Fatalf("GetHistory: %v", err)
		}
		if len(msgs) != 2 || msgs[0].ID != "m1" {
			t.Errorf("unexpected history: %+v", msgs)
		}
	})

	t.Run("delete chat hits the chats resource", func(t *testing.T) {
		var gotMethod, gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod, gotPath = r.Method, r.URL.Path
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := New(srv.URL)
		if err := client.DeleteChat(context.Background(), "c1"); err != nil {
			t.Fatalf("DeleteChat: %v", err)
		}
		if gotMethod != http.MethodDelete || gotPath != "/chats/c1" {
			t.Errorf("unexpected request: %s %s", gotMethod, gotPath)
		}
	})
}

func TestClientFiles(t *testing.T) {
	t.Run("upload sends multipart form with file field", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "report.csv")
		if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/files/upload" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			f, header, err := r.FormFile("file")
			if err != nil {
				t.Fatalf("reading form file: %v", err)
			}
			defer f.Close()
			if header.Filename != "report.csv" {
				t.Errorf("unexpected filename: %q", header.Filename)
			}
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		client := New(srv.URL)
		if err := client.UploadFile(context.Background(), path); err != nil {
			t.Fatalf("UploadFile: %v", err)
		}
	})

	t.Run("list unwraps the files envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"files": []File{{ID: "f1", Filename: "report.csv", FileSize: 8}},
			})
		}))
		defer srv.Close()

		client := New(srv.URL)
		files, err := client.ListFiles(context.Background())
		if err != nil {
			t.Fatalf("ListFiles: %v", err)
		}
		if len(files) != 1 || files[0].Filename != "report.csv" {
			t.Errorf("unexpected files: %+v", files)
		}
	})
}

func TestClientUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"user":  User{Username: "ivan", Specialization: "retail"},
			"stats": Stats{FilesCount: 3, MessagesCount: 12},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	user, stats, err := client.GetUser(context.Background())
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if user.Username != "ivan" {
		t.Errorf("unexpected user: %+v", user)
	}
	if stats.FilesCount != 3 || stats.MessagesCount != 12 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestClientTokenLifecycle(t *testing.T) {
	client := New("")
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("expected default base URL, got %q", client.BaseURL())
	}

	client.SetToken("tok")
	if client.Token() != "tok" {
		t.Errorf("expected token 'tok', got %q", client.Token())
	}
	client.ClearToken()
	if client.Token() != "" {
		t.Errorf("expected empty token after clear, got %q", client.Token())
	}
}
