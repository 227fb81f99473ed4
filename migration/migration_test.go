package migration

import (
	"strings"
	"testing"
)

func TestFiles(t *testing.T) {
	names, err := Files()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) == 0 || names[0] != "01_init.sql" {
		t.Fatalf("names = %v", names)
	}

	body, err := files.ReadFile(names[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, table := range []string{"todos", "conversations", "messages"} {
		if !strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Errorf("schema missing table %s", table)
		}
	}
}
