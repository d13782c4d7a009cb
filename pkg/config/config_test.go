package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "OCR_ENGINE", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.OCREngine != "tesseract" {
		t.Errorf("ocr engine = %q, want tesseract", cfg.OCREngine)
	}
	if cfg.MaxUploadBytes != 20<<20 {
		t.Errorf("max upload = %d", cfg.MaxUploadBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("OCR_ENGINE", "azure")
	t.Setenv("AZURE_OCR_ENDPOINT", "https://example.invalid")
	t.Setenv("AZURE_OCR_KEY", "secret")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")

	cfg := Load()
	if cfg.Port != "9999" || cfg.OCREngine != "azure" || cfg.MaxUploadBytes != 1024 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("OCR_ENGINE", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"tesseract default", func(c *Config) {}, false},
		{"azure without credentials", func(c *Config) { c.OCREngine = "azure" }, true},
		{"unknown engine", func(c *Config) { c.OCREngine = "paddle" }, true},
		{"non-positive upload limit", func(c *Config) { c.MaxUploadBytes = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
