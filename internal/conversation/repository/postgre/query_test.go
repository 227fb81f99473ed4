package postgre

import (
	"testing"

	repo "todo-assistant/internal/conversation/repository"
)

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	tests := []struct {
		name     string
		opt      repo.GetOneConversationOptions
		want     string
		wantArgs int
	}{
		{"Empty", repo.GetOneConversationOptions{}, "1=1", 0},
		{"IDOnly", repo.GetOneConversationOptions{ID: "c1"}, "id = $1", 1},
		{"IDAndUser", repo.GetOneConversationOptions{ID: "c1", UserID: "u1"}, "id = $1 AND user_id = $2", 2},
		{"UserOnly", repo.GetOneConversationOptions{UserID: "u1"}, "user_id = $1", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, args := r.buildGetOneQuery(tt.opt)
			if got != tt.want {
				t.Errorf("where = %q, want %q", got, tt.want)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
		})
	}
}

func TestBuildPage(t *testing.T) {
	t.Run("LimitAndOffset", func(t *testing.T) {
		got, args := buildPage(2, 10, 20)
		if got != "LIMIT $2 OFFSET $3" {
			t.Errorf("got %q", got)
		}
		if len(args) != 2 || args[0] != 10 || args[1] != 20 {
			t.Errorf("args = %v", args)
		}
	})

	t.Run("NoOffset", func(t *testing.T) {
		got, args := buildPage(2, 10, 0)
		if got != "LIMIT $2" || len(args) != 1 {
			t.Errorf("got %q %v", got, args)
		}
	})

	t.Run("Nothing", func(t *testing.T) {
		got, args := buildPage(2, 0, 0)
		if got != "" || len(args) != 0 {
			t.Errorf("got %q %v", got, args)
		}
	})
}
