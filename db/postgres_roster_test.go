package db

import (
	"os"
	"reflect"
	"testing"
)

func TestPostgresRoster_SaveAndLoad(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	conn, err := Open(dsn)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer conn.Close()
	if err := InitSchema(conn); err != nil {
		t.Fatalf("InitSchema: %v", err)
	}

	pr := NewPostgresRoster(conn)
	if err := pr.Save(map[string]string{"s1": "Ada", "s2": "Grace"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := pr.Save(map[string]string{"s2": "Grace"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := pr.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := map[string]string{"s2": "Grace"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("roster = %v, want %v", got, want)
	}
}

func TestConfig_DSNDefaultsSSLMode(t *testing.T) {
	cfg := Config{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "attendance"}
	want := "host=db port=5432 user=u password=p dbname=attendance sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Fatalf("DSN = %q, want %q", got, want)
	}
}
