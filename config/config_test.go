package config

import "testing"

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(cfg, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q, want %q", got, "9090")
	}
	if got := GetString(cfg, "MISSING", "8080"); got != "8080" {
		t.Errorf("GetString(MISSING) = %q, want default %q", got, "8080")
	}
	if got := GetString(cfg, "EMPTY", "fallback"); got != "" {
		t.Errorf("GetString(EMPTY) = %q, want empty string (key present)", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("GetString(nil config) = %q, want default", got)
	}
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	if got := GetInt(cfg, "TIMEOUT", 180); got != 30 {
		t.Errorf("GetInt(TIMEOUT) = %d, want 30", got)
	}
	if got := GetInt(cfg, "BAD", 180); got != 180 {
		t.Errorf("GetInt(BAD) = %d, want default 180", got)
	}
	if got := GetInt(cfg, "MISSING", 180); got != 180 {
		t.Errorf("GetInt(MISSING) = %d, want default 180", got)
	}
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "maybe"}

	if got := GetBool(cfg, "ON", false); got != true {
		t.Errorf("GetBool(ON) = %v, want true", got)
	}
	if got := GetBool(cfg, "OFF", true); got != false {
		t.Errorf("GetBool(OFF) = %v, want false", got)
	}
	if got := GetBool(cfg, "BAD", true); got != true {
		t.Errorf("GetBool(BAD) = %v, want default true", got)
	}
}
